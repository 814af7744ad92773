package metrics

import (
	"database/sql"
	"strings"
	"time"
)

// UpdateDBStats publishes a connection pool snapshot. The wait counters are
// cumulative in sql.DBStats, so they feed counters rather than gauges.
func (m *Metrics) UpdateDBStats(stats sql.DBStats) {
	m.safeExecute("UpdateDBStats", func() {
		m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
		m.DBConnectionsInUse.Set(float64(stats.InUse))
		m.DBConnectionsIdle.Set(float64(stats.Idle))
		m.DBConnectionsMax.Set(float64(stats.MaxOpenConnections))
		m.DBConnectionWaitTotal.Add(float64(stats.WaitCount))
		m.DBConnectionWaitDuration.Add(stats.WaitDuration.Seconds())
	})
}

// RecordDBQuery records one query against the users, boards, posts or
// comments table. Operation names come from the gorm callbacks and are
// lowercased so "SELECT" and "select" share a series.
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		op := strings.ToLower(operation)
		m.DBQueryDuration.WithLabelValues(op, table).Observe(duration.Seconds())

		if err != nil {
			m.DBQueryErrors.WithLabelValues(op, table).Inc()
		}
	})
}
