package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"task-tracker-api/internal/domain"
	"task-tracker-api/internal/dto"
	"task-tracker-api/internal/metrics"
	"task-tracker-api/internal/repository"
	"task-tracker-api/internal/response"
)

// MaxUploadSize is the largest attachment body accepted by UploadAttachment
const MaxUploadSize = 50 << 20

// AttachmentStorage stores attachment bodies outside the database
type AttachmentStorage interface {
	GenerateFileKey(taskID uuid.UUID, fileName string) string
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
	GetFileURL(key string) string
}

// AttachmentService defines the interface for attachment operations.
// Attachments are immutable once created.
type AttachmentService interface {
	CreateAttachment(ctx context.Context, req *dto.CreateAttachmentRequest) (*dto.AttachmentResponse, error)
	UploadAttachment(ctx context.Context, req *dto.UploadAttachmentRequest) (*dto.AttachmentResponse, error)
	GetAttachment(ctx context.Context, attachmentID uuid.UUID) (*dto.AttachmentResponse, error)
}

type attachmentServiceImpl struct {
	attachmentRepo repository.AttachmentRepository
	taskRepo       repository.TaskRepository
	storage        AttachmentStorage
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewAttachmentService creates a new instance of AttachmentService.
// storage may be nil, in which case uploads are refused.
func NewAttachmentService(
	attachmentRepo repository.AttachmentRepository,
	taskRepo repository.TaskRepository,
	storage AttachmentStorage,
	m *metrics.Metrics,
	logger *zap.Logger,
) AttachmentService {
	return &attachmentServiceImpl{
		attachmentRepo: attachmentRepo,
		taskRepo:       taskRepo,
		storage:        storage,
		metrics:        m,
		logger:         logger,
	}
}

// CreateAttachment records an already stored file under a task
func (s *attachmentServiceImpl) CreateAttachment(ctx context.Context, req *dto.CreateAttachmentRequest) (*dto.AttachmentResponse, error) {
	if err := requireText("content", req.Content, 0); err != nil {
		return nil, err
	}
	if err := requireRef("task_id", req.TaskID); err != nil {
		return nil, err
	}
	if _, err := findOrFail(ctx, s.taskRepo.FindByID, req.TaskID, entityTask); err != nil {
		return nil, err
	}

	attachment, err := s.create(ctx, req.TaskID, req.Content)
	if err != nil {
		return nil, err
	}
	return s.toResponse(attachment), nil
}

// UploadAttachment stores the body and then records it. If the row cannot be
// written the stored object is removed again.
func (s *attachmentServiceImpl) UploadAttachment(ctx context.Context, req *dto.UploadAttachmentRequest) (*dto.AttachmentResponse, error) {
	if s.storage == nil {
		return nil, response.NewInternalError("File storage is not configured", "")
	}
	if err := requireRef("task_id", req.TaskID); err != nil {
		return nil, err
	}
	if err := requireText("file name", req.FileName, maxVarcharLength); err != nil {
		return nil, err
	}
	if req.Body == nil {
		return nil, response.NewValidationError("file is required", "")
	}
	if req.FileSize > MaxUploadSize {
		return nil, response.NewValidationError(
			"File is too large",
			fmt.Sprintf("at most %d bytes allowed", MaxUploadSize),
		)
	}
	if _, err := findOrFail(ctx, s.taskRepo.FindByID, req.TaskID, entityTask); err != nil {
		return nil, err
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := s.storage.GenerateFileKey(req.TaskID, req.FileName)
	if _, err := s.storage.UploadFile(ctx, key, req.Body, contentType); err != nil {
		s.logger.Error("Failed to upload attachment",
			zap.String("task_id", req.TaskID.String()),
			zap.String("key", key),
			zap.Error(err))
		return nil, response.NewInternalError("Failed to upload file", err.Error())
	}

	attachment, err := s.create(ctx, req.TaskID, key)
	if err != nil {
		if deleteErr := s.storage.DeleteFile(ctx, key); deleteErr != nil {
			s.logger.Error("Failed to remove orphaned attachment object",
				zap.String("key", key),
				zap.Error(deleteErr))
		}
		return nil, err
	}
	return s.toResponse(attachment), nil
}

// GetAttachment retrieves an attachment by ID
func (s *attachmentServiceImpl) GetAttachment(ctx context.Context, attachmentID uuid.UUID) (*dto.AttachmentResponse, error) {
	attachment, err := findOrFail(ctx, s.attachmentRepo.FindByID, attachmentID, entityAttach)
	if err != nil {
		return nil, err
	}
	return s.toResponse(attachment), nil
}

func (s *attachmentServiceImpl) create(ctx context.Context, taskID uuid.UUID, content string) (*domain.Attachment, error) {
	attachment := &domain.Attachment{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Content:   content,
		TaskID:    taskID,
	}
	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		s.logger.Error("Failed to create attachment",
			zap.String("task_id", taskID.String()),
			zap.Error(err))
		return nil, storeError("create attachment", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementEntityCreated(entityAttach)
	}
	return attachment, nil
}

func (s *attachmentServiceImpl) toResponse(attachment *domain.Attachment) *dto.AttachmentResponse {
	resp := toAttachmentResponse(attachment)
	if s.storage != nil {
		resp.FileURL = s.storage.GetFileURL(attachment.Content)
	}
	return resp
}
