package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"task-tracker-api/internal/database"
	"task-tracker-api/internal/domain"
	"task-tracker-api/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestRouter builds a router over a migrated in-memory database
func setupTestRouter(t *testing.T, basePath string) (*gin.Engine, *gorm.DB, *prometheus.Registry) {
	t.Helper()

	db, err := database.New(database.Config{
		Driver: "sqlite",
		DSN:    ":memory:?_foreign_keys=on",
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(registry, zap.NewNop())

	r := Setup(Config{
		DB:             db,
		Logger:         zap.NewNop(),
		BasePath:       basePath,
		Metrics:        m,
		Gatherer:       registry,
		AllowedOrigins: []string{"http://localhost:3000"},
	})
	return r, db, registry
}

func request(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r, _, _ := setupTestRouter(t, "/api/tasks")

	for _, path := range []string{"/health", "/api/tasks/health"} {
		w := request(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	}
	for _, path := range []string{"/ready", "/api/tasks/ready"} {
		w := request(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"status":"ready"`)
	}
}

func TestMetricsEndpoint_WithBasePath(t *testing.T) {
	r, _, _ := setupTestRouter(t, "/api/tasks")

	// generate one observed request so the HTTP series exist
	request(r, http.MethodGet, "/api/tasks/labels/"+uuid.New().String(), "")

	for _, path := range []string{"/metrics", "/api/tasks/metrics"} {
		w := request(r, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		body := w.Body.String()
		assert.Contains(t, body, "# HELP")
		assert.Contains(t, body, "task_tracker_http_requests_total")
	}
}

func TestRoutes_TaskLifecycle(t *testing.T) {
	r, db, _ := setupTestRouter(t, "/api/tasks")

	sprint := &domain.Sprint{Name: "Sprint 1"}
	require.NoError(t, db.Create(sprint).Error)
	user := &domain.User{Username: "alice"}
	require.NoError(t, db.Create(user).Error)

	w := request(r, http.MethodPost, "/api/tasks/tasks",
		`{"title":"Write docs","description":"API reference","sprintId":"`+sprint.ID.String()+`","status":"ToDo"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			TaskID string  `json:"taskId"`
			UserID *string `json:"userId"`
			Status string  `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Nil(t, created.Data.UserID)
	taskPath := "/api/tasks/tasks/" + created.Data.TaskID

	w = request(r, http.MethodPost, "/api/tasks/comments",
		`{"content":"needs review","userId":"`+user.ID.String()+`","taskId":"`+created.Data.TaskID+`"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = request(r, http.MethodPatch, taskPath, `{"status":"Doing","userId":"`+user.ID.String()+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"Doing"`)

	w = request(r, http.MethodGet, taskPath+"/detail", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "needs review")

	w = request(r, http.MethodGet, "/api/tasks/sprints/"+sprint.ID.String()+"/tasks", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.Data.TaskID)

	w = request(r, http.MethodGet, "/api/tasks/tasks/"+uuid.New().String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_UnknownParentIsNotFound(t *testing.T) {
	r, _, _ := setupTestRouter(t, "/api/tasks")

	w := request(r, http.MethodPost, "/api/tasks/work-times", `{"taskId":"`+uuid.New().String()+`"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestRoutes_WithoutBasePath(t *testing.T) {
	r, _, _ := setupTestRouter(t, "")

	w := request(r, http.MethodGet, "/attachments/"+uuid.New().String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(r, http.MethodPost, "/labels", `{"name":"bug"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r, _, _ := setupTestRouter(t, "/api/tasks")

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks/tasks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetup_PanicIsAccessLogged(t *testing.T) {
	db, err := database.New(database.Config{Driver: "sqlite", DSN: ":memory:?_foreign_keys=on"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	core, logs := observer.New(zapcore.InfoLevel)
	r := Setup(Config{DB: db, Logger: zap.New(core)})
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := request(r, http.MethodGet, "/boom", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
	access := logs.FilterMessage("Server error").All()
	require.Len(t, access, 1)
	assert.EqualValues(t, http.StatusInternalServerError, access[0].ContextMap()["status"])
}
