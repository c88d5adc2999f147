package aggregators

import (
	"time"

	"logwatch/internal/models"
)

// UptimeSummarizer derives availability figures from an already-fetched,
// time-ordered probe window. It is a pure function of its inputs: the window
// end is passed explicitly instead of reading the wall clock, so results are
// reproducible for any historical window.
//
//go:generate mockgen -source=uptime_summarizer.go -destination=./mocks/uptime_summarizer_mock.go -package=mocks
type UptimeSummarizer interface {
	Summarize(probes []*models.UptimeProbe, windowEnd time.Time) *models.UptimeWindowResult
}

type uptimeSummarizer struct{}

func NewUptimeSummarizer() UptimeSummarizer {
	return &uptimeSummarizer{}
}

func (s *uptimeSummarizer) Summarize(probes []*models.UptimeProbe, windowEnd time.Time) *models.UptimeWindowResult {
	result := &models.UptimeWindowResult{
		Probes: probes,
		// No probes means no downtime detected, not an outage.
		UptimePercentage:  100.0,
		DowntimeIntervals: []models.DowntimeInterval{},
	}
	if len(probes) == 0 {
		return result
	}

	upCount := 0
	for _, probe := range probes {
		if probe.Status == models.ProbeUp {
			upCount++
		}
	}
	result.UptimePercentage = float64(upCount) / float64(len(probes)) * 100.0
	result.DowntimeIntervals = coalesceDowntime(probes, windowEnd)
	return result
}

// coalesceDowntime merges maximal runs of consecutive DOWN probes into
// intervals. A run ends at the timestamp of the probe immediately after it;
// a run still open at the end of the window is closed by windowEnd.
func coalesceDowntime(probes []*models.UptimeProbe, windowEnd time.Time) []models.DowntimeInterval {
	intervals := []models.DowntimeInterval{}

	var runStart *time.Time
	for _, probe := range probes {
		switch probe.Status {
		case models.ProbeDown:
			if runStart == nil {
				start := probe.TimestampUTC
				runStart = &start
			}
		default:
			if runStart != nil {
				intervals = append(intervals, models.DowntimeInterval{
					Start:    *runStart,
					End:      probe.TimestampUTC,
					Duration: probe.TimestampUTC.Sub(*runStart),
				})
				runStart = nil
			}
		}
	}
	if runStart != nil {
		end := windowEnd
		if end.Before(*runStart) {
			end = *runStart
		}
		intervals = append(intervals, models.DowntimeInterval{
			Start:    *runStart,
			End:      end,
			Duration: end.Sub(*runStart),
		})
	}

	return intervals
}
