package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"task-tracker-api/internal/dto"
	"task-tracker-api/internal/response"
	"task-tracker-api/internal/service"
)

type LabelHandler struct {
	labelService service.LabelService
	logger       *zap.Logger
}

func NewLabelHandler(labelService service.LabelService, logger *zap.Logger) *LabelHandler {
	return &LabelHandler{
		labelService: labelService,
		logger:       logger,
	}
}

func (h *LabelHandler) CreateLabel(c *gin.Context) {
	var req dto.CreateLabelRequest
	if !bindJSON(c, &req) {
		return
	}

	label, err := h.labelService.CreateLabel(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, label)
}

func (h *LabelHandler) GetLabel(c *gin.Context) {
	labelID, ok := parseIDParam(c, "labelId")
	if !ok {
		return
	}

	label, err := h.labelService.GetLabel(c.Request.Context(), labelID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, label)
}
