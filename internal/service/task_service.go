package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"task-tracker-api/internal/domain"
	"task-tracker-api/internal/dto"
	"task-tracker-api/internal/metrics"
	"task-tracker-api/internal/repository"
	"task-tracker-api/internal/response"
)

// TaskService defines the interface for task operations
type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTask(ctx context.Context, taskID uuid.UUID) (*dto.TaskResponse, error)
	GetTaskDetail(ctx context.Context, taskID uuid.UUID) (*dto.TaskDetailResponse, error)
	UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	ListSprintTasks(ctx context.Context, sprintID uuid.UUID) ([]dto.TaskResponse, error)
}

type taskServiceImpl struct {
	taskRepo       repository.TaskRepository
	referenceRepo  repository.ReferenceRepository
	taskLabelRepo  repository.TaskLabelRepository
	commentRepo    repository.CommentRepository
	attachmentRepo repository.AttachmentRepository
	workTimeRepo   repository.WorkTimeRepository
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	referenceRepo repository.ReferenceRepository,
	taskLabelRepo repository.TaskLabelRepository,
	commentRepo repository.CommentRepository,
	attachmentRepo repository.AttachmentRepository,
	workTimeRepo repository.WorkTimeRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		taskRepo:       taskRepo,
		referenceRepo:  referenceRepo,
		taskLabelRepo:  taskLabelRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		workTimeRepo:   workTimeRepo,
		metrics:        m,
		logger:         logger,
	}
}

// CreateTask creates a new task. CreatedAt and Deadline are stamped by the store.
func (s *taskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if err := requireText("title", req.Title, maxVarcharLength); err != nil {
		return nil, err
	}
	if err := requireText("description", req.Description, 0); err != nil {
		return nil, err
	}
	status := domain.TaskStatus(req.Status)
	if !status.IsValid() {
		return nil, invalidStatus(req.Status)
	}
	if err := requireRef("sprint_id", req.SprintID); err != nil {
		return nil, err
	}

	if err := ensureExists(ctx, s.referenceRepo.SprintExists, req.SprintID, entitySprint); err != nil {
		return nil, err
	}
	if req.UserID != nil {
		if err := ensureExists(ctx, s.referenceRepo.UserExists, *req.UserID, entityUser); err != nil {
			return nil, err
		}
	}

	task := &domain.Task{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		Title:       req.Title,
		Description: req.Description,
		SprintID:    req.SprintID,
		UserID:      req.UserID,
		Status:      status,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		s.logger.Error("Failed to create task",
			zap.String("sprint_id", req.SprintID.String()),
			zap.Error(err))
		return nil, storeError("create task", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementEntityCreated(entityTask)
	}

	return toTaskResponse(task), nil
}

// GetTask retrieves a task by ID
func (s *taskServiceImpl) GetTask(ctx context.Context, taskID uuid.UUID) (*dto.TaskResponse, error) {
	task, err := findOrFail(ctx, s.taskRepo.FindByID, taskID, entityTask)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// GetTaskDetail retrieves a task with its labels, comments, attachments and work times
func (s *taskServiceImpl) GetTaskDetail(ctx context.Context, taskID uuid.UUID) (*dto.TaskDetailResponse, error) {
	task, err := findOrFail(ctx, s.taskRepo.FindByID, taskID, entityTask)
	if err != nil {
		return nil, err
	}

	var (
		taskLabels  []*domain.TaskLabel
		comments    []*domain.Comment
		attachments []*domain.Attachment
		workTimes   []*domain.WorkTime
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) (err error) {
		if taskLabels, err = s.taskLabelRepo.FindByTaskID(ctx, taskID); err != nil {
			return response.NewInternalError("Failed to fetch task labels", err.Error())
		}
		return nil
	})
	p.Go(func(ctx context.Context) (err error) {
		if comments, err = s.commentRepo.FindByTaskID(ctx, taskID); err != nil {
			return response.NewInternalError("Failed to fetch comments", err.Error())
		}
		return nil
	})
	p.Go(func(ctx context.Context) (err error) {
		if attachments, err = s.attachmentRepo.FindByTaskID(ctx, taskID); err != nil {
			return response.NewInternalError("Failed to fetch attachments", err.Error())
		}
		return nil
	})
	p.Go(func(ctx context.Context) (err error) {
		if workTimes, err = s.workTimeRepo.FindByTaskID(ctx, taskID); err != nil {
			return response.NewInternalError("Failed to fetch work times", err.Error())
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		s.logger.Error("Failed to load task detail", zap.String("task_id", taskID.String()), zap.Error(err))
		return nil, err
	}

	detail := &dto.TaskDetailResponse{
		TaskResponse: *toTaskResponse(task),
		Labels:       make([]dto.TaskLabelResponse, 0, len(taskLabels)),
		Comments:     make([]dto.CommentResponse, 0, len(comments)),
		Attachments:  make([]dto.AttachmentResponse, 0, len(attachments)),
		WorkTimes:    make([]dto.WorkTimeResponse, 0, len(workTimes)),
	}
	for _, tl := range taskLabels {
		detail.Labels = append(detail.Labels, *toTaskLabelResponse(tl))
	}
	for _, c := range comments {
		detail.Comments = append(detail.Comments, *toCommentResponse(c))
	}
	for _, a := range attachments {
		detail.Attachments = append(detail.Attachments, *toAttachmentResponse(a))
	}
	for _, wt := range workTimes {
		detail.WorkTimes = append(detail.WorkTimes, *toWorkTimeResponse(wt))
	}

	return detail, nil
}

// UpdateTask applies the non-nil fields of req and saves the whole task.
// The deadline moves to the save time even when req is empty.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := findOrFail(ctx, s.taskRepo.FindByID, taskID, entityTask)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := requireText("title", *req.Title, maxVarcharLength); err != nil {
			return nil, err
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		if err := requireText("description", *req.Description, 0); err != nil {
			return nil, err
		}
		task.Description = *req.Description
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		if !status.IsValid() {
			return nil, invalidStatus(*req.Status)
		}
		task.Status = status
	}
	if req.SprintID != nil {
		if err := requireRef("sprint_id", *req.SprintID); err != nil {
			return nil, err
		}
		if err := ensureExists(ctx, s.referenceRepo.SprintExists, *req.SprintID, entitySprint); err != nil {
			return nil, err
		}
		task.SprintID = *req.SprintID
	}
	switch {
	case req.UnassignUser:
		task.UserID = nil
	case req.UserID != nil:
		if err := ensureExists(ctx, s.referenceRepo.UserExists, *req.UserID, entityUser); err != nil {
			return nil, err
		}
		userID := *req.UserID
		task.UserID = &userID
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		s.logger.Error("Failed to update task",
			zap.String("task_id", taskID.String()),
			zap.Error(err))
		return nil, storeError("update task", err)
	}

	updated, err := findOrFail(ctx, s.taskRepo.FindByID, taskID, entityTask)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(updated), nil
}

func invalidStatus(status string) error {
	return response.NewValidationError(
		"Invalid task status",
		"status must be one of ToDo, Doing, Done; got "+status,
	)
}

// ListSprintTasks returns the tasks of a sprint, oldest first
func (s *taskServiceImpl) ListSprintTasks(ctx context.Context, sprintID uuid.UUID) ([]dto.TaskResponse, error) {
	if err := ensureExists(ctx, s.referenceRepo.SprintExists, sprintID, entitySprint); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindBySprintID(ctx, sprintID)
	if err != nil {
		s.logger.Error("Failed to list sprint tasks",
			zap.String("sprint_id", sprintID.String()),
			zap.Error(err))
		return nil, response.NewInternalError("Failed to fetch tasks", err.Error())
	}

	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, *toTaskResponse(task))
	}
	return out, nil
}
