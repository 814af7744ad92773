package database

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats sql.DBStats)
}

func markStart(db *gorm.DB) {
	db.InstanceSet("query_start_time", time.Now())
}

func recordQuery(db *gorm.DB, recorder MetricsRecorder, operation string) {
	startTime, ok := db.InstanceGet("query_start_time")
	if !ok {
		return
	}
	duration := time.Since(startTime.(time.Time))
	table := db.Statement.Table
	if table == "" {
		table = "unknown"
	}
	recorder.RecordDBQuery(operation, table, duration, db.Error)
}

// RegisterMetricsCallbacks registers GORM callbacks that time every query
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	db.Callback().Query().Before("gorm:query").Register("metrics:select_before", markStart)
	db.Callback().Query().After("gorm:query").Register("metrics:select_after", func(db *gorm.DB) {
		recordQuery(db, recorder, "select")
	})

	db.Callback().Create().Before("gorm:create").Register("metrics:insert_before", markStart)
	db.Callback().Create().After("gorm:create").Register("metrics:insert_after", func(db *gorm.DB) {
		recordQuery(db, recorder, "insert")
	})

	db.Callback().Update().Before("gorm:update").Register("metrics:update_before", markStart)
	db.Callback().Update().After("gorm:update").Register("metrics:update_after", func(db *gorm.DB) {
		recordQuery(db, recorder, "update")
	})

	db.Callback().Delete().Before("gorm:delete").Register("metrics:delete_before", markStart)
	db.Callback().Delete().After("gorm:delete").Register("metrics:delete_after", func(db *gorm.DB) {
		recordQuery(db, recorder, "delete")
	})
}

// StartDBStatsCollector starts periodic DB connection pool stats collection
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
