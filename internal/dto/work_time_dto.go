package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateWorkTimeRequest starts a time record for a task
type CreateWorkTimeRequest struct {
	TaskID uuid.UUID `json:"taskId" binding:"required"`
}

// UpdateWorkTimeRequest represents the request to update a work time.
// An empty request is valid and only advances EndDate.
type UpdateWorkTimeRequest struct {
	TaskID *uuid.UUID `json:"taskId,omitempty"`
}

// WorkTimeResponse represents the work time response
type WorkTimeResponse struct {
	WorkTimeID uuid.UUID  `json:"workTimeId"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	TaskID     uuid.UUID  `json:"taskId"`
}
