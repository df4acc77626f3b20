package dto

import "github.com/google/uuid"

// CreateLabelRequest represents the request to create a new label
type CreateLabelRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// LabelResponse represents the label response
type LabelResponse struct {
	LabelID uuid.UUID `json:"labelId"`
	Name    string    `json:"name"`
}
