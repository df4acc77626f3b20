package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CountedTables are the tables whose row counts are exported
var CountedTables = []string{"tasks", "labels", "task_labels", "comments", "attachments", "work_times"}

// BusinessMetricsCollector collects business metrics periodically
type BusinessMetricsCollector struct {
	db       *gorm.DB
	metrics  *Metrics
	logger   *zap.Logger
	interval time.Duration
	cron     *cron.Cron
	stopOnce sync.Once
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger, interval time.Duration) *BusinessMetricsCollector {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &BusinessMetricsCollector{
		db:       db,
		metrics:  metrics,
		logger:   logger,
		interval: interval,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
}

// Start collects once right away and then on every interval
func (c *BusinessMetricsCollector) Start() {
	if _, err := c.cron.AddFunc("@every "+c.interval.String(), c.collect); err != nil {
		c.logger.Error("Failed to schedule business metrics collection",
			zap.Duration("interval", c.interval),
			zap.Error(err),
		)
		return
	}
	go c.collect()
	c.cron.Start()
}

// Stop stops the collector and waits for a running collection to finish.
// It is safe to call more than once.
func (c *BusinessMetricsCollector) Stop() {
	c.stopOnce.Do(func() {
		<-c.cron.Stop().Done()
	})
}

func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, table := range CountedTables {
		var count int64
		if err := c.db.WithContext(ctx).Table(table).Count(&count).Error; err != nil {
			c.logger.Error("Failed to count rows", zap.String("table", table), zap.Error(err))
			continue
		}
		c.metrics.SetEntitiesTotal(table, count)
	}
}
