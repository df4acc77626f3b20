package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deleteByID hard-deletes one row so foreign key actions fire, and reports
// gorm.ErrRecordNotFound when nothing matched
func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id uuid.UUID) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
