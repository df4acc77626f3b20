package metrics

import (
	"strconv"
	"strings"
	"time"
)

// RecordHTTPRequest records HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		status := categorizeStatus(statusCode)
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

// categorizeStatus collapses a status code into its class, e.g. 404 -> "4xx"
func categorizeStatus(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}

var probeSuffixes = []string{"/metrics", "/health", "/ready"}

// ShouldSkipEndpoint reports whether path is a probe or scrape endpoint
func ShouldSkipEndpoint(path string) bool {
	for _, suffix := range probeSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
