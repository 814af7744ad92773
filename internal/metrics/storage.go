package metrics

import (
	"time"
)

// RecordStorageOperation records an image storage call
func (m *Metrics) RecordStorageOperation(operation string, duration time.Duration, err error) {
	m.safeExecute("RecordStorageOperation", func() {
		m.StorageRequestsTotal.WithLabelValues(operation).Inc()
		m.StorageRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())

		if err != nil {
			m.StorageErrors.WithLabelValues(operation).Inc()
		}
	})
}
