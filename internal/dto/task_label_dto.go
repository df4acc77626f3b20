package dto

import "github.com/google/uuid"

// CreateTaskLabelRequest links a label to a task. Either side may be omitted.
type CreateTaskLabelRequest struct {
	LabelID *uuid.UUID `json:"labelId,omitempty"`
	TaskID  *uuid.UUID `json:"taskId,omitempty"`
}

// UpdateTaskLabelRequest represents the request to update a task label.
// ClearLabel and ClearTask null the matching reference.
type UpdateTaskLabelRequest struct {
	LabelID    *uuid.UUID `json:"labelId,omitempty"`
	TaskID     *uuid.UUID `json:"taskId,omitempty"`
	ClearLabel bool       `json:"clearLabel,omitempty"`
	ClearTask  bool       `json:"clearTask,omitempty"`
}

// TaskLabelResponse represents the task label response
type TaskLabelResponse struct {
	TaskLabelID uuid.UUID  `json:"taskLabelId"`
	LabelID     *uuid.UUID `json:"labelId"`
	TaskID      *uuid.UUID `json:"taskId"`
}
