package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"task-tracker-api/internal/domain"
)

// WorkTimeRepository defines the interface for work time data access
type WorkTimeRepository interface {
	Create(ctx context.Context, workTime *domain.WorkTime) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkTime, error)
	FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.WorkTime, error)
	Update(ctx context.Context, workTime *domain.WorkTime) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type workTimeRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkTimeRepository creates a new instance of WorkTimeRepository
func NewWorkTimeRepository(db *gorm.DB) WorkTimeRepository {
	return &workTimeRepositoryImpl{db: db}
}

func (r *workTimeRepositoryImpl) Create(ctx context.Context, workTime *domain.WorkTime) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(workTime).Error
}

func (r *workTimeRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkTime, error) {
	var workTime domain.WorkTime
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&workTime).Error; err != nil {
		return nil, err
	}
	return &workTime, nil
}

// FindByTaskID finds the work times of a task, earliest start first
func (r *workTimeRepositoryImpl) FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.WorkTime, error) {
	var workTimes []*domain.WorkTime
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("start_date ASC").
		Find(&workTimes).Error; err != nil {
		return nil, err
	}
	return workTimes, nil
}

// Update saves the work time. EndDate is always restamped to the store
// clock, whatever value the caller put on the struct.
func (r *workTimeRepositoryImpl) Update(ctx context.Context, workTime *domain.WorkTime) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(workTime).Error
}

func (r *workTimeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &domain.WorkTime{}, id)
}
