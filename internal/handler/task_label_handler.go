package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"task-tracker-api/internal/dto"
	"task-tracker-api/internal/response"
	"task-tracker-api/internal/service"
)

type TaskLabelHandler struct {
	taskLabelService service.TaskLabelService
	logger           *zap.Logger
}

func NewTaskLabelHandler(taskLabelService service.TaskLabelService, logger *zap.Logger) *TaskLabelHandler {
	return &TaskLabelHandler{
		taskLabelService: taskLabelService,
		logger:           logger,
	}
}

func (h *TaskLabelHandler) CreateTaskLabel(c *gin.Context) {
	var req dto.CreateTaskLabelRequest
	if !bindJSON(c, &req) {
		return
	}

	taskLabel, err := h.taskLabelService.CreateTaskLabel(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, taskLabel)
}

func (h *TaskLabelHandler) GetTaskLabel(c *gin.Context) {
	taskLabelID, ok := parseIDParam(c, "taskLabelId")
	if !ok {
		return
	}

	taskLabel, err := h.taskLabelService.GetTaskLabel(c.Request.Context(), taskLabelID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, taskLabel)
}

func (h *TaskLabelHandler) UpdateTaskLabel(c *gin.Context) {
	taskLabelID, ok := parseIDParam(c, "taskLabelId")
	if !ok {
		return
	}

	var req dto.UpdateTaskLabelRequest
	if !bindJSON(c, &req) {
		return
	}

	taskLabel, err := h.taskLabelService.UpdateTaskLabel(c.Request.Context(), taskLabelID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, taskLabel)
}
