package metrics

import (
	"context"
	"errors"
	"strings"
	"time"
)

// RecordStorageCall records one call to the attachment object store
func (m *Metrics) RecordStorageCall(operation string, duration time.Duration, err error) {
	m.safeExecute("RecordStorageCall", func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		m.StorageRequestsTotal.WithLabelValues(operation, status).Inc()
		m.StorageRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())

		if err != nil {
			m.StorageErrors.WithLabelValues(operation, getErrorType(err)).Inc()
		}
	})
}

// getErrorType buckets storage errors into a small label set
func getErrorType(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "connection_refused"
	case strings.Contains(msg, "no such host"):
		return "dns_error"
	case strings.Contains(msg, "timeout"):
		return "timeout"
	case strings.Contains(msg, "AccessDenied"):
		return "access_denied"
	case strings.Contains(msg, "NoSuchBucket"):
		return "no_such_bucket"
	}
	return "unknown"
}
