package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCommentRequest represents the request to create a new comment
type CreateCommentRequest struct {
	Content string    `json:"content" binding:"required,min=1"`
	UserID  uuid.UUID `json:"userId" binding:"required"`
	TaskID  uuid.UUID `json:"taskId" binding:"required"`
}

// UpdateCommentRequest represents the request to update a comment
type UpdateCommentRequest struct {
	Content *string `json:"content,omitempty" binding:"omitempty,min=1"`
}

// CommentResponse represents the comment response
type CommentResponse struct {
	CommentID uuid.UUID `json:"commentId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uuid.UUID `json:"userId"`
	TaskID    uuid.UUID `json:"taskId"`
}
