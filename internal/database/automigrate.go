package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-tracker-api/internal/domain"
)

// modelInfo holds information about a domain model and its table name
type modelInfo struct {
	model     interface{}
	tableName string
}

// models lists every table in foreign key dependency order.
// sprints and users belong to other subsystems; migrating them only creates
// the reference columns when the tables are missing.
func models() []modelInfo {
	return []modelInfo{
		{&domain.Sprint{}, "sprints"},
		{&domain.User{}, "users"},
		{&domain.Task{}, "tasks"},
		{&domain.Label{}, "labels"},
		{&domain.TaskLabel{}, "task_labels"},
		{&domain.Comment{}, "comments"},
		{&domain.Attachment{}, "attachments"},
		{&domain.WorkTime{}, "work_times"},
	}
}

// AutoMigrate creates tables, indexes, check constraints and foreign keys
// from the struct definitions in the domain package
func AutoMigrate(db *gorm.DB) error {
	all := models()
	list := make([]interface{}, 0, len(all))
	for _, m := range all {
		list = append(list, m.model)
	}

	if err := db.AutoMigrate(list...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// SafeAutoMigrate migrates one table at a time and logs whether each table
// was created or only brought up to date
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	all := models()

	logger.Info("Starting safe auto-migration", zap.Int("total_models", len(all)))

	for _, m := range all {
		tableExists := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	logger.Info("Safe auto-migration completed", zap.Int("tables_migrated", len(all)))
	return nil
}
