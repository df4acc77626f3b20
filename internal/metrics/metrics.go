package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const (
	namespace = "task_tracker"
)

// Pool states reported on the db_connections gauge
const (
	poolStateOpen  = "open"
	poolStateInUse = "in_use"
	poolStateIdle  = "idle"
	poolStateMax   = "max"
)

// Metrics holds all application metrics
type Metrics struct {
	// HTTP metrics, labelled by route pattern rather than raw path
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database metrics
	DBConnections      *prometheus.GaugeVec
	DBWaitsTotal       prometheus.Counter
	DBWaitSecondsTotal prometheus.Counter
	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec

	// Attachment storage metrics
	StorageRequestDuration *prometheus.HistogramVec
	StorageRequestsTotal   *prometheus.CounterVec
	StorageErrors          *prometheus.CounterVec

	// Business metrics
	EntitiesTotal        *prometheus.GaugeVec
	EntityCreatedTotal   *prometheus.CounterVec
	WorkTimeTouchedTotal prometheus.Counter

	// last pool wait figures seen, so counters only grow by the delta
	statsMu          sync.Mutex
	lastWaitCount    int64
	lastWaitDuration float64

	logger *zap.Logger
}

// New creates and registers all metrics with the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, nil)
}

// NewWithLogger creates and registers all metrics with the default registry and a logger
func NewWithLogger(logger *zap.Logger) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, logger)
}

// NewWithRegistry creates and registers all metrics with a custom registry
func NewWithRegistry(registerer prometheus.Registerer, logger *zap.Logger) *Metrics {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Metrics{logger: logger}
	factory := promauto.With(registerer)
	m.registerHTTP(factory)
	m.registerDatabase(factory)
	m.registerStorage(factory)
	m.registerBusiness(factory)
	return m
}

func (m *Metrics) registerHTTP(f promauto.Factory) {
	m.HTTPRequestsTotal = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Handled HTTP requests by route and status class",
	}, []string{"method", "route", "status_class"})

	// 5ms up to roughly 3s
	m.HTTPRequestDuration = f.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time spent handling an HTTP request",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2.5, 8),
	}, []string{"method", "route"})
}

func (m *Metrics) registerDatabase(f promauto.Factory) {
	m.DBConnections = f.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "connections",
		Help:      "Connection pool size by state (open, in_use, idle, max)",
	}, []string{"state"})
	m.DBWaitsTotal = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "connection_waits_total",
		Help:      "Times a query had to wait for a free pool connection",
	})
	m.DBWaitSecondsTotal = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "connection_wait_seconds_total",
		Help:      "Time spent waiting for a free pool connection",
	})

	queryLabels := []string{"operation", "table"}
	m.DBQueryDuration = f.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "query_duration_seconds",
		Help:      "GORM statement latency by operation and table",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2.5, 9),
	}, queryLabels)
	m.DBQueryErrors = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "db",
		Name:      "query_errors_total",
		Help:      "GORM statements that returned an error",
	}, queryLabels)
}

func (m *Metrics) registerStorage(f promauto.Factory) {
	m.StorageRequestDuration = f.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "request_duration_seconds",
		Help:      "Attachment storage request duration in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2.5, 8),
	}, []string{"operation"})
	m.StorageRequestsTotal = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "requests_total",
		Help:      "Total number of attachment storage requests",
	}, []string{"operation", "status"})
	m.StorageErrors = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "errors_total",
		Help:      "Total number of attachment storage errors",
	}, []string{"operation", "error_type"})
}

func (m *Metrics) registerBusiness(f promauto.Factory) {
	m.EntitiesTotal = f.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "entities_total",
		Help:      "Current number of stored rows per table",
	}, []string{"table"})
	m.EntityCreatedTotal = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_created_total",
		Help:      "Total number of entity creation events",
	}, []string{"entity"})
	m.WorkTimeTouchedTotal = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "work_time_touched_total",
		Help:      "Total number of work time saves that advanced the end date",
	})
}

// safeExecute wraps metric operations with panic recovery
func (m *Metrics) safeExecute(operation string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Panic in metrics operation",
				zap.String("operation", operation),
				zap.Any("panic", r),
			)
		}
	}()
	fn()
}
