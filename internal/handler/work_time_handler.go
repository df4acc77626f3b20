package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"task-tracker-api/internal/dto"
	"task-tracker-api/internal/response"
	"task-tracker-api/internal/service"
)

type WorkTimeHandler struct {
	workTimeService service.WorkTimeService
	logger          *zap.Logger
}

func NewWorkTimeHandler(workTimeService service.WorkTimeService, logger *zap.Logger) *WorkTimeHandler {
	return &WorkTimeHandler{
		workTimeService: workTimeService,
		logger:          logger,
	}
}

func (h *WorkTimeHandler) CreateWorkTime(c *gin.Context) {
	var req dto.CreateWorkTimeRequest
	if !bindJSON(c, &req) {
		return
	}

	workTime, err := h.workTimeService.CreateWorkTime(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, workTime)
}

func (h *WorkTimeHandler) GetWorkTime(c *gin.Context) {
	workTimeID, ok := parseIDParam(c, "workTimeId")
	if !ok {
		return
	}

	workTime, err := h.workTimeService.GetWorkTime(c.Request.Context(), workTimeID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, workTime)
}

// UpdateWorkTime handles PATCH /work-times/:workTimeId.
// An empty body is accepted and stops the clock at the current time.
func (h *WorkTimeHandler) UpdateWorkTime(c *gin.Context) {
	workTimeID, ok := parseIDParam(c, "workTimeId")
	if !ok {
		return
	}

	var req dto.UpdateWorkTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body: "+err.Error())
		return
	}

	workTime, err := h.workTimeService.UpdateWorkTime(c.Request.Context(), workTimeID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, workTime)
}
