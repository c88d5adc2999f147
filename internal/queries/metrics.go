package queries

import (
	"logwatch/internal/shared/metrics"
)

const (
	valueOpListLogs      = "list_access_logs"
	valueOpExportLogs    = "export_access_logs"
	valueOpListUptime    = "list_uptime"
	valueOpUptimeSummary = "uptime_summary"
	valueOpStatistics    = "statistics"
)

var (
	metricQueriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "queries_total",
		},
		[]string{"operation", metrics.FieldErrorCode},
	)

	metricQueryDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "query_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"operation"},
	)
)
