package ingestors

import (
	"logwatch/internal/shared/metrics"
)

const (
	valueLineStored       = "stored"
	valueLineParseFailure = "parse_failure"
	valueLineDropped      = "dropped"

	valueCycleSkipped = "cycle_overlap_skipped"
	valueCycleFailed  = "cycle_failed"
)

var (
	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_total",
		},
		[]string{"result"},
	)

	metricCyclesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "cycles_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricCycleDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "cycle_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"source"},
	)

	metricCursorOffset = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "cursor_offset_bytes",
		},
		[]string{"source"},
	)
)
