package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-tracker-api/internal/domain"
)

// ReferenceRepository answers existence checks against the externally owned
// sprints and users tables
type ReferenceRepository interface {
	SprintExists(ctx context.Context, id uuid.UUID) (bool, error)
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type referenceRepositoryImpl struct {
	db *gorm.DB
}

// NewReferenceRepository creates a new instance of ReferenceRepository
func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepositoryImpl{db: db}
}

func (r *referenceRepositoryImpl) SprintExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.db, &domain.Sprint{}, id)
}

func (r *referenceRepositoryImpl) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.db, &domain.User{}, id)
}

func exists(ctx context.Context, db *gorm.DB, model interface{}, id uuid.UUID) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
