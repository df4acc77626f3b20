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

// LabelService defines the interface for label operations.
// Labels are immutable once created.
type LabelService interface {
	CreateLabel(ctx context.Context, req *dto.CreateLabelRequest) (*dto.LabelResponse, error)
	GetLabel(ctx context.Context, labelID uuid.UUID) (*dto.LabelResponse, error)
}

type labelServiceImpl struct {
	labelRepo repository.LabelRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewLabelService creates a new instance of LabelService
func NewLabelService(labelRepo repository.LabelRepository, m *metrics.Metrics, logger *zap.Logger) LabelService {
	return &labelServiceImpl{
		labelRepo: labelRepo,
		metrics:   m,
		logger:    logger,
	}
}

// CreateLabel creates a new label
func (s *labelServiceImpl) CreateLabel(ctx context.Context, req *dto.CreateLabelRequest) (*dto.LabelResponse, error) {
	if err := requireText("name", req.Name, maxVarcharLength); err != nil {
		return nil, err
	}

	label := &domain.Label{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      req.Name,
	}
	if err := s.labelRepo.Create(ctx, label); err != nil {
		s.logger.Error("Failed to create label", zap.String("name", req.Name), zap.Error(err))
		return nil, storeError("create label", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementEntityCreated(entityLabel)
	}
	return toLabelResponse(label), nil
}

// GetLabel retrieves a label by ID
func (s *labelServiceImpl) GetLabel(ctx context.Context, labelID uuid.UUID) (*dto.LabelResponse, error) {
	label, err := findOrFail(ctx, s.labelRepo.FindByID, labelID, entityLabel)
	if err != nil {
		return nil, err
	}
	return toLabelResponse(label), nil
}
