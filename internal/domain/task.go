package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskStatusToDo  TaskStatus = "ToDo"
	TaskStatusDoing TaskStatus = "Doing"
	TaskStatusDone  TaskStatus = "Done"
)

// IsValid reports whether s is one of the enumerated statuses
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusDoing, TaskStatusDone:
		return true
	}
	return false
}

// Task represents a unit of work inside a sprint
// Deadline is rewritten to the store clock on every save, so it behaves as a
// "last touched" marker rather than a caller-chosen due date.
type Task struct {
	BaseModel
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time  `gorm:"type:timestamp;not null;autoCreateTime;<-:create" json:"created_at"`
	Deadline    time.Time  `gorm:"type:timestamp;not null;autoUpdateTime" json:"deadline"`
	SprintID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_tasks_sprint_id" json:"sprint_id"`
	UserID      *uuid.UUID `gorm:"type:uuid;index:idx_tasks_user_id" json:"user_id"`
	Status      TaskStatus `gorm:"type:varchar(255);not null;check:chk_tasks_status,status IN ('ToDo','Doing','Done')" json:"status"`
	Sprint      *Sprint    `gorm:"foreignKey:SprintID;constraint:OnDelete:CASCADE" json:"sprint,omitempty"`
	User        *User      `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

func (t Task) String() string {
	return t.Title
}
