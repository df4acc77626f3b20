package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-tracker-api/internal/domain"
)

// LabelRepository defines the interface for label data access
type LabelRepository interface {
	Create(ctx context.Context, label *domain.Label) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Label, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Label, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type labelRepositoryImpl struct {
	db *gorm.DB
}

// NewLabelRepository creates a new instance of LabelRepository
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepositoryImpl{db: db}
}

func (r *labelRepositoryImpl) Create(ctx context.Context, label *domain.Label) error {
	return r.db.WithContext(ctx).Create(label).Error
}

func (r *labelRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Label, error) {
	var label domain.Label
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&label).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// FindByIDs finds labels by their IDs in a single query
func (r *labelRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Label, error) {
	if len(ids) == 0 {
		return []*domain.Label{}, nil
	}

	var labels []*domain.Label
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

// Delete removes the label; task labels pointing at it keep existing with
// an unset label reference
func (r *labelRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &domain.Label{}, id)
}
