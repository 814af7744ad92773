package metrics

import (
	"strconv"
	"strings"
	"time"
)

// RecordHTTPRequest records one served request. Status codes are collapsed
// into their class ("2xx", "4xx", ...) to keep the label set bounded.
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusClass(statusCode)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}

// ShouldSkipEndpoint reports whether a path is excluded from request metrics.
// Scrape, probe and documentation endpoints would only measure Prometheus
// and Kubernetes polling themselves.
func ShouldSkipEndpoint(path string) bool {
	switch path {
	case "/metrics", "/health", "/ready", "/api/metrics", "/api/health", "/api/ready":
		return true
	}
	return strings.HasPrefix(path, "/swagger/")
}
