package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-tracker-api/internal/handler"
	"task-tracker-api/internal/metrics"
	"task-tracker-api/internal/middleware"
	"task-tracker-api/internal/repository"
	"task-tracker-api/internal/service"
)

// Config holds router dependencies
type Config struct {
	DB       *gorm.DB
	Logger   *zap.Logger
	BasePath string
	Metrics  *metrics.Metrics
	// Gatherer backs the /metrics endpoint. Defaults to the global registry.
	Gatherer       prometheus.Gatherer
	Storage        service.AttachmentStorage
	AllowedOrigins []string
}

// Setup creates and configures the Gin router
func Setup(cfg Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Recovery(cfg.Logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metricsHandler := gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	healthHandler := handler.NewHealthHandler(cfg.DB)

	// Probes and scraping stay reachable at the root regardless of base path
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/metrics", metricsHandler)

	// Repositories
	taskRepo := repository.NewTaskRepository(cfg.DB)
	labelRepo := repository.NewLabelRepository(cfg.DB)
	taskLabelRepo := repository.NewTaskLabelRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	attachmentRepo := repository.NewAttachmentRepository(cfg.DB)
	workTimeRepo := repository.NewWorkTimeRepository(cfg.DB)
	referenceRepo := repository.NewReferenceRepository(cfg.DB)

	// Services
	taskService := service.NewTaskService(taskRepo, referenceRepo, taskLabelRepo, commentRepo, attachmentRepo, workTimeRepo, cfg.Metrics, cfg.Logger)
	labelService := service.NewLabelService(labelRepo, cfg.Metrics, cfg.Logger)
	taskLabelService := service.NewTaskLabelService(taskLabelRepo, labelRepo, taskRepo, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, taskRepo, referenceRepo, cfg.Metrics, cfg.Logger)
	attachmentService := service.NewAttachmentService(attachmentRepo, taskRepo, cfg.Storage, cfg.Metrics, cfg.Logger)
	workTimeService := service.NewWorkTimeService(workTimeRepo, taskRepo, cfg.Metrics, cfg.Logger)

	// Handlers
	taskHandler := handler.NewTaskHandler(taskService, cfg.Logger)
	labelHandler := handler.NewLabelHandler(labelService, cfg.Logger)
	taskLabelHandler := handler.NewTaskLabelHandler(taskLabelService, cfg.Logger)
	commentHandler := handler.NewCommentHandler(commentService, cfg.Logger)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService, cfg.Logger)
	workTimeHandler := handler.NewWorkTimeHandler(workTimeService, cfg.Logger)

	api := router.Group(cfg.BasePath)
	if cfg.BasePath != "" {
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)
		api.GET("/metrics", metricsHandler)
	}

	tasks := api.Group("/tasks")
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:taskId", taskHandler.GetTask)
		tasks.GET("/:taskId/detail", taskHandler.GetTaskDetail)
		tasks.PATCH("/:taskId", taskHandler.UpdateTask)
	}

	api.GET("/sprints/:sprintId/tasks", taskHandler.ListSprintTasks)

	labels := api.Group("/labels")
	{
		labels.POST("", labelHandler.CreateLabel)
		labels.GET("/:labelId", labelHandler.GetLabel)
	}

	taskLabels := api.Group("/task-labels")
	{
		taskLabels.POST("", taskLabelHandler.CreateTaskLabel)
		taskLabels.GET("/:taskLabelId", taskLabelHandler.GetTaskLabel)
		taskLabels.PATCH("/:taskLabelId", taskLabelHandler.UpdateTaskLabel)
	}

	comments := api.Group("/comments")
	{
		comments.POST("", commentHandler.CreateComment)
		comments.GET("/:commentId", commentHandler.GetComment)
		comments.PATCH("/:commentId", commentHandler.UpdateComment)
	}

	attachments := api.Group("/attachments")
	{
		attachments.POST("", attachmentHandler.CreateAttachment)
		attachments.POST("/upload", attachmentHandler.UploadAttachment)
		attachments.GET("/:attachmentId", attachmentHandler.GetAttachment)
	}

	workTimes := api.Group("/work-times")
	{
		workTimes.POST("", workTimeHandler.CreateWorkTime)
		workTimes.GET("/:workTimeId", workTimeHandler.GetWorkTime)
		workTimes.PATCH("/:workTimeId", workTimeHandler.UpdateWorkTime)
	}

	return router
}
