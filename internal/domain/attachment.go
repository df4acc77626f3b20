package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// AttachmentKeyPrefix is the storage prefix under which attachment content lives
const AttachmentKeyPrefix = "task-attachments"

// Attachment represents a file attached to a task.
// Content holds the storage key of the file, not its bytes.
type Attachment struct {
	BaseModel
	Content string    `gorm:"type:text;not null" json:"content"`
	TaskID  uuid.UUID `gorm:"type:uuid;not null;index:idx_attachments_task_id" json:"task_id"`
	Task    *Task     `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`
}

// TableName specifies the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}

func (a Attachment) String() string {
	return fmt.Sprintf("Attachment %s", a.ID)
}
