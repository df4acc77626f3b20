package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-tracker-api/internal/response"
)

// maxVarcharLength is the width of every varchar column
const maxVarcharLength = 255

// Entity names used in error messages and metric labels
const (
	entityTask      = "task"
	entityLabel     = "label"
	entityTaskLabel = "task_label"
	entityComment   = "comment"
	entityAttach    = "attachment"
	entityWorkTime  = "work_time"
	entitySprint    = "sprint"
	entityUser      = "user"
)

// findOrFail loads one record by id. A missing record becomes NOT_FOUND
// naming the entity; any other failure becomes INTERNAL_ERROR.
func findOrFail[T any](ctx context.Context, find func(context.Context, uuid.UUID) (*T, error), id uuid.UUID, entity string) (*T, error) {
	record, err := find(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(displayName(entity)+" not found", id.String())
		}
		return nil, response.NewInternalError("Failed to fetch "+entity, err.Error())
	}
	if record == nil {
		return nil, response.NewNotFoundError(displayName(entity)+" not found", id.String())
	}
	return record, nil
}

// ensureExists checks that a referenced row exists
func ensureExists(ctx context.Context, exists func(context.Context, uuid.UUID) (bool, error), id uuid.UUID, entity string) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return response.NewInternalError("Failed to verify "+entity, err.Error())
	}
	if !ok {
		return response.NewNotFoundError(displayName(entity)+" not found", id.String())
	}
	return nil
}

// requireText rejects blank values and, when maxLen > 0, values longer than maxLen runes
func requireText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return response.NewValidationError(field+" is required", "")
	}
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		return response.NewValidationError(
			field+" is too long",
			fmt.Sprintf("at most %d characters allowed", maxLen),
		)
	}
	return nil
}

// requireRef rejects an unset reference
func requireRef(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return response.NewValidationError(field+" is required", "")
	}
	return nil
}

// storeError maps a persistence failure. Constraint violations reported by
// the database are the caller's fault; everything else is internal.
func storeError(action string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return response.NewValidationError("Referenced record does not exist", err.Error())
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return response.NewValidationError("Value violates a constraint", err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return response.NewNotFoundError("Record not found", err.Error())
	}
	return response.NewInternalError("Failed to "+action, err.Error())
}

func displayName(entity string) string {
	name := strings.ReplaceAll(entity, "_", " ")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
