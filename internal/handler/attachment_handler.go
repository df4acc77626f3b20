package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"task-tracker-api/internal/dto"
	"task-tracker-api/internal/response"
	"task-tracker-api/internal/service"
)

type AttachmentHandler struct {
	attachmentService service.AttachmentService
	logger            *zap.Logger
}

func NewAttachmentHandler(attachmentService service.AttachmentService, logger *zap.Logger) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
		logger:            logger,
	}
}

// CreateAttachment records a file that is already in storage
func (h *AttachmentHandler) CreateAttachment(c *gin.Context) {
	var req dto.CreateAttachmentRequest
	if !bindJSON(c, &req) {
		return
	}

	attachment, err := h.attachmentService.CreateAttachment(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, attachment)
}

// UploadAttachment accepts a multipart form with "taskId" and "file" fields
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxUploadSize+1<<20)

	taskID, err := uuid.Parse(c.PostForm("taskId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid taskId")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	attachment, err := h.attachmentService.UploadAttachment(c.Request.Context(), &dto.UploadAttachmentRequest{
		TaskID:      taskID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		FileSize:    fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, attachment)
}

func (h *AttachmentHandler) GetAttachment(c *gin.Context) {
	attachmentID, ok := parseIDParam(c, "attachmentId")
	if !ok {
		return
	}

	attachment, err := h.attachmentService.GetAttachment(c.Request.Context(), attachmentID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, attachment)
}
