package domain

import "github.com/google/uuid"

// TaskLabel associates a task with a label.
// Both references are optional and are cleared, not cascaded, when the
// referenced row goes away.
type TaskLabel struct {
	BaseModel
	LabelID *uuid.UUID `gorm:"type:uuid;index:idx_task_labels_label_id" json:"label_id"`
	TaskID  *uuid.UUID `gorm:"type:uuid;index:idx_task_labels_task_id" json:"task_id"`
	Label   *Label     `gorm:"foreignKey:LabelID;constraint:OnDelete:SET NULL" json:"label,omitempty"`
	Task    *Task      `gorm:"foreignKey:TaskID;constraint:OnDelete:SET NULL" json:"task,omitempty"`
}

// TableName specifies the table name for TaskLabel
func (TaskLabel) TableName() string {
	return "task_labels"
}

func (tl TaskLabel) String() string {
	return tl.ID.String()
}
