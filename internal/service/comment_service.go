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

// CommentService defines the interface for comment operations
type CommentService interface {
	CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetComment(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
}

type commentServiceImpl struct {
	commentRepo   repository.CommentRepository
	taskRepo      repository.TaskRepository
	referenceRepo repository.ReferenceRepository
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	taskRepo repository.TaskRepository,
	referenceRepo repository.ReferenceRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo:   commentRepo,
		taskRepo:      taskRepo,
		referenceRepo: referenceRepo,
		metrics:       m,
		logger:        logger,
	}
}

// CreateComment creates a new comment. Both the author and the task are required.
func (s *commentServiceImpl) CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if err := requireText("content", req.Content, 0); err != nil {
		return nil, err
	}
	if err := requireRef("user_id", req.UserID); err != nil {
		return nil, err
	}
	if err := requireRef("task_id", req.TaskID); err != nil {
		return nil, err
	}

	if err := ensureExists(ctx, s.referenceRepo.UserExists, req.UserID, entityUser); err != nil {
		return nil, err
	}
	if _, err := findOrFail(ctx, s.taskRepo.FindByID, req.TaskID, entityTask); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Content:   req.Content,
		UserID:    req.UserID,
		TaskID:    req.TaskID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		s.logger.Error("Failed to create comment",
			zap.String("task_id", req.TaskID.String()),
			zap.Error(err))
		return nil, storeError("create comment", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementEntityCreated(entityComment)
	}
	return toCommentResponse(comment), nil
}

// GetComment retrieves a comment by ID
func (s *commentServiceImpl) GetComment(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error) {
	comment, err := findOrFail(ctx, s.commentRepo.FindByID, commentID, entityComment)
	if err != nil {
		return nil, err
	}
	return toCommentResponse(comment), nil
}

// UpdateComment updates a comment's content
func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := findOrFail(ctx, s.commentRepo.FindByID, commentID, entityComment)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		if err := requireText("content", *req.Content, 0); err != nil {
			return nil, err
		}
		comment.Content = *req.Content
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		s.logger.Error("Failed to update comment",
			zap.String("comment_id", commentID.String()),
			zap.Error(err))
		return nil, storeError("update comment", err)
	}

	updated, err := findOrFail(ctx, s.commentRepo.FindByID, commentID, entityComment)
	if err != nil {
		return nil, err
	}
	return toCommentResponse(updated), nil
}
