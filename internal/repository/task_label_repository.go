package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"task-tracker-api/internal/domain"
)

// TaskLabelRepository defines the interface for task-label association data access
type TaskLabelRepository interface {
	Create(ctx context.Context, taskLabel *domain.TaskLabel) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.TaskLabel, error)
	FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskLabel, error)
	Update(ctx context.Context, taskLabel *domain.TaskLabel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskLabelRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskLabelRepository creates a new instance of TaskLabelRepository
func NewTaskLabelRepository(db *gorm.DB) TaskLabelRepository {
	return &taskLabelRepositoryImpl{db: db}
}

func (r *taskLabelRepositoryImpl) Create(ctx context.Context, taskLabel *domain.TaskLabel) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(taskLabel).Error
}

func (r *taskLabelRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.TaskLabel, error) {
	var taskLabel domain.TaskLabel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&taskLabel).Error; err != nil {
		return nil, err
	}
	return &taskLabel, nil
}

// FindByTaskID finds the label associations of a task
func (r *taskLabelRepositoryImpl) FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskLabel, error) {
	var taskLabels []*domain.TaskLabel
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Find(&taskLabels).Error; err != nil {
		return nil, err
	}
	return taskLabels, nil
}

func (r *taskLabelRepositoryImpl) Update(ctx context.Context, taskLabel *domain.TaskLabel) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(taskLabel).Error
}

func (r *taskLabelRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &domain.TaskLabel{}, id)
}
