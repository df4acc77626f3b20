package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a comment left by a user on a task
type Comment struct {
	BaseModel
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"type:timestamp;not null;autoCreateTime;<-:create" json:"created_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_user_id" json:"user_id"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_task_id" json:"task_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Task      *Task     `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

func (c Comment) String() string {
	return c.Content
}
