package dto

import (
	"io"

	"github.com/google/uuid"
)

// CreateAttachmentRequest registers an already stored file under a task
type CreateAttachmentRequest struct {
	Content string    `json:"content" binding:"required"`
	TaskID  uuid.UUID `json:"taskId" binding:"required"`
}

// UploadAttachmentRequest carries a file body to be stored and attached.
// It is filled from a multipart form, never from JSON.
type UploadAttachmentRequest struct {
	TaskID      uuid.UUID
	FileName    string
	ContentType string
	FileSize    int64
	Body        io.Reader
}

// AttachmentResponse represents the attachment response
type AttachmentResponse struct {
	AttachmentID uuid.UUID `json:"attachmentId"`
	Content      string    `json:"content"`
	TaskID       uuid.UUID `json:"taskId"`
	FileURL      string    `json:"fileUrl,omitempty"`
}
