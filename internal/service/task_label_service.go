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

// TaskLabelService defines the interface for task label operations
type TaskLabelService interface {
	CreateTaskLabel(ctx context.Context, req *dto.CreateTaskLabelRequest) (*dto.TaskLabelResponse, error)
	GetTaskLabel(ctx context.Context, taskLabelID uuid.UUID) (*dto.TaskLabelResponse, error)
	UpdateTaskLabel(ctx context.Context, taskLabelID uuid.UUID, req *dto.UpdateTaskLabelRequest) (*dto.TaskLabelResponse, error)
}

type taskLabelServiceImpl struct {
	taskLabelRepo repository.TaskLabelRepository
	labelRepo     repository.LabelRepository
	taskRepo      repository.TaskRepository
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewTaskLabelService creates a new instance of TaskLabelService
func NewTaskLabelService(
	taskLabelRepo repository.TaskLabelRepository,
	labelRepo repository.LabelRepository,
	taskRepo repository.TaskRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskLabelService {
	return &taskLabelServiceImpl{
		taskLabelRepo: taskLabelRepo,
		labelRepo:     labelRepo,
		taskRepo:      taskRepo,
		metrics:       m,
		logger:        logger,
	}
}

// CreateTaskLabel creates a link between a label and a task. Both sides are optional.
func (s *taskLabelServiceImpl) CreateTaskLabel(ctx context.Context, req *dto.CreateTaskLabelRequest) (*dto.TaskLabelResponse, error) {
	if err := s.checkRefs(ctx, req.LabelID, req.TaskID); err != nil {
		return nil, err
	}

	taskLabel := &domain.TaskLabel{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		LabelID:   req.LabelID,
		TaskID:    req.TaskID,
	}
	if err := s.taskLabelRepo.Create(ctx, taskLabel); err != nil {
		s.logger.Error("Failed to create task label", zap.Error(err))
		return nil, storeError("create task label", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementEntityCreated(entityTaskLabel)
	}
	return toTaskLabelResponse(taskLabel), nil
}

// GetTaskLabel retrieves a task label by ID
func (s *taskLabelServiceImpl) GetTaskLabel(ctx context.Context, taskLabelID uuid.UUID) (*dto.TaskLabelResponse, error) {
	taskLabel, err := findOrFail(ctx, s.taskLabelRepo.FindByID, taskLabelID, entityTaskLabel)
	if err != nil {
		return nil, err
	}
	return toTaskLabelResponse(taskLabel), nil
}

// UpdateTaskLabel repoints or clears either side of the link
func (s *taskLabelServiceImpl) UpdateTaskLabel(ctx context.Context, taskLabelID uuid.UUID, req *dto.UpdateTaskLabelRequest) (*dto.TaskLabelResponse, error) {
	taskLabel, err := findOrFail(ctx, s.taskLabelRepo.FindByID, taskLabelID, entityTaskLabel)
	if err != nil {
		return nil, err
	}

	labelID, taskID := req.LabelID, req.TaskID
	if req.ClearLabel {
		labelID = nil
	}
	if req.ClearTask {
		taskID = nil
	}
	if err := s.checkRefs(ctx, labelID, taskID); err != nil {
		return nil, err
	}

	if req.ClearLabel || labelID != nil {
		taskLabel.LabelID = labelID
	}
	if req.ClearTask || taskID != nil {
		taskLabel.TaskID = taskID
	}

	if err := s.taskLabelRepo.Update(ctx, taskLabel); err != nil {
		s.logger.Error("Failed to update task label",
			zap.String("task_label_id", taskLabelID.String()),
			zap.Error(err))
		return nil, storeError("update task label", err)
	}

	updated, err := findOrFail(ctx, s.taskLabelRepo.FindByID, taskLabelID, entityTaskLabel)
	if err != nil {
		return nil, err
	}
	return toTaskLabelResponse(updated), nil
}

func (s *taskLabelServiceImpl) checkRefs(ctx context.Context, labelID, taskID *uuid.UUID) error {
	if labelID != nil {
		if _, err := findOrFail(ctx, s.labelRepo.FindByID, *labelID, entityLabel); err != nil {
			return err
		}
	}
	if taskID != nil {
		if _, err := findOrFail(ctx, s.taskRepo.FindByID, *taskID, entityTask); err != nil {
			return err
		}
	}
	return nil
}
