package probes

import (
	"logwatch/internal/shared/metrics"
)

const (
	valueStatusUp   = "up"
	valueStatusDown = "down"
)

var (
	metricChecksTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProbe,
			Name:      "checks_total",
		},
		[]string{"target", "status"},
	)

	metricCheckDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProbe,
			Name:      "check_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"target"},
	)
)
