package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"task-tracker-api/internal/domain"
	"task-tracker-api/internal/dto"
	"task-tracker-api/internal/metrics"
	"task-tracker-api/internal/repository"
)

// WorkTimeService defines the interface for work time operations
type WorkTimeService interface {
	CreateWorkTime(ctx context.Context, req *dto.CreateWorkTimeRequest) (*dto.WorkTimeResponse, error)
	GetWorkTime(ctx context.Context, workTimeID uuid.UUID) (*dto.WorkTimeResponse, error)
	UpdateWorkTime(ctx context.Context, workTimeID uuid.UUID, req *dto.UpdateWorkTimeRequest) (*dto.WorkTimeResponse, error)
}

type workTimeServiceImpl struct {
	workTimeRepo repository.WorkTimeRepository
	taskRepo     repository.TaskRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewWorkTimeService creates a new instance of WorkTimeService
func NewWorkTimeService(
	workTimeRepo repository.WorkTimeRepository,
	taskRepo repository.TaskRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) WorkTimeService {
	return &workTimeServiceImpl{
		workTimeRepo: workTimeRepo,
		taskRepo:     taskRepo,
		metrics:      m,
		logger:       logger,
	}
}

// CreateWorkTime starts a work time record on a task
func (s *workTimeServiceImpl) CreateWorkTime(ctx context.Context, req *dto.CreateWorkTimeRequest) (*dto.WorkTimeResponse, error) {
	if err := requireRef("task_id", req.TaskID); err != nil {
		return nil, err
	}
	if _, err := findOrFail(ctx, s.taskRepo.FindByID, req.TaskID, entityTask); err != nil {
		return nil, err
	}

	workTime := &domain.WorkTime{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		TaskID:    req.TaskID,
	}
	if err := s.workTimeRepo.Create(ctx, workTime); err != nil {
		s.logger.Error("Failed to create work time",
			zap.String("task_id", req.TaskID.String()),
			zap.Error(err))
		return nil, storeError("create work time", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementEntityCreated(entityWorkTime)
	}
	return toWorkTimeResponse(workTime), nil
}

// GetWorkTime retrieves a work time by ID
func (s *workTimeServiceImpl) GetWorkTime(ctx context.Context, workTimeID uuid.UUID) (*dto.WorkTimeResponse, error) {
	workTime, err := findOrFail(ctx, s.workTimeRepo.FindByID, workTimeID, entityWorkTime)
	if err != nil {
		return nil, err
	}
	return toWorkTimeResponse(workTime), nil
}

// UpdateWorkTime saves the record, optionally moving it to another task.
// Every save restamps EndDate, so an empty request marks the work as ended now.
func (s *workTimeServiceImpl) UpdateWorkTime(ctx context.Context, workTimeID uuid.UUID, req *dto.UpdateWorkTimeRequest) (*dto.WorkTimeResponse, error) {
	workTime, err := findOrFail(ctx, s.workTimeRepo.FindByID, workTimeID, entityWorkTime)
	if err != nil {
		return nil, err
	}

	if req.TaskID != nil {
		if err := requireRef("task_id", *req.TaskID); err != nil {
			return nil, err
		}
		if _, err := findOrFail(ctx, s.taskRepo.FindByID, *req.TaskID, entityTask); err != nil {
			return nil, err
		}
		workTime.TaskID = *req.TaskID
	}

	if err := s.workTimeRepo.Update(ctx, workTime); err != nil {
		s.logger.Error("Failed to update work time",
			zap.String("work_time_id", workTimeID.String()),
			zap.Error(err))
		return nil, storeError("update work time", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementWorkTimeTouched()
	}

	updated, err := findOrFail(ctx, s.workTimeRepo.FindByID, workTimeID, entityWorkTime)
	if err != nil {
		return nil, err
	}
	return toWorkTimeResponse(updated), nil
}
