package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WorkTime records a span of time spent on a task.
// StartDate is stamped once on insert; EndDate is restamped on every save.
type WorkTime struct {
	BaseModel
	StartDate time.Time  `gorm:"type:timestamp;not null;autoCreateTime;<-:create" json:"start_date"`
	EndDate   *time.Time `gorm:"type:timestamp;autoUpdateTime" json:"end_date"`
	TaskID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_work_times_task_id" json:"task_id"`
	Task      *Task      `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`
}

// TableName specifies the table name for WorkTime
func (WorkTime) TableName() string {
	return "work_times"
}

func (w WorkTime) String() string {
	task := w.TaskID.String()
	if w.Task != nil {
		task = w.Task.Title
	}
	return fmt.Sprintf("task: %s, start time: %s", task, w.StartDate.Format("2006 - 01 - 02"))
}
