package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTaskRequest represents the request to create a new task
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description" binding:"required"`
	SprintID    uuid.UUID  `json:"sprintId" binding:"required"`
	UserID      *uuid.UUID `json:"userId,omitempty"`
	Status      string     `json:"status" binding:"required,oneof=ToDo Doing Done"`
}

// UpdateTaskRequest represents the request to update a task.
// Nil fields are left untouched. UnassignUser clears the assignee and wins
// over UserID when both are set.
type UpdateTaskRequest struct {
	Title        *string    `json:"title,omitempty" binding:"omitempty,max=255"`
	Description  *string    `json:"description,omitempty"`
	Status       *string    `json:"status,omitempty" binding:"omitempty,oneof=ToDo Doing Done"`
	SprintID     *uuid.UUID `json:"sprintId,omitempty"`
	UserID       *uuid.UUID `json:"userId,omitempty"`
	UnassignUser bool       `json:"unassignUser,omitempty"`
}

// TaskResponse represents the task response
type TaskResponse struct {
	TaskID      uuid.UUID  `json:"taskId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	Deadline    time.Time  `json:"deadline"`
	SprintID    uuid.UUID  `json:"sprintId"`
	UserID      *uuid.UUID `json:"userId"`
	Status      string     `json:"status"`
}

// TaskDetailResponse is a task together with everything that hangs off it
type TaskDetailResponse struct {
	TaskResponse
	Labels      []TaskLabelResponse  `json:"labels"`
	Comments    []CommentResponse    `json:"comments"`
	Attachments []AttachmentResponse `json:"attachments"`
	WorkTimes   []WorkTimeResponse   `json:"workTimes"`
}
