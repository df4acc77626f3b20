package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"task-tracker-api/internal/database"
	"task-tracker-api/internal/domain"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// setupTestDB opens a migrated in-memory SQLite database driven by clock
func setupTestDB(t *testing.T, clock *testClock) *gorm.DB {
	t.Helper()

	db, err := database.New(database.Config{
		Driver:  "sqlite",
		DSN:     ":memory:?_foreign_keys=on",
		NowFunc: clock.Now,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func createSprint(t *testing.T, db *gorm.DB) *domain.Sprint {
	t.Helper()
	sprint := &domain.Sprint{Name: "Sprint 1"}
	require.NoError(t, db.Create(sprint).Error)
	return sprint
}

func createUser(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()
	user := &domain.User{Username: "alice"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTask(t *testing.T, repo TaskRepository, sprint *domain.Sprint) *domain.Task {
	t.Helper()
	task := &domain.Task{
		Title:       "Fix bug",
		Description: "Saving a draft crashes the editor",
		SprintID:    sprint.ID,
		Status:      domain.TaskStatusToDo,
	}
	require.NoError(t, repo.Create(t.Context(), task))
	return task
}
