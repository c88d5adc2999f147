package models

import "time"

// DowntimeInterval is a coalesced maximal run of consecutive DOWN probes.
// End is the timestamp of the probe immediately after the run, or the window
// end when the run is still open at the end of the window.
type DowntimeInterval struct {
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Duration time.Duration `json:"duration"`
}

// UptimeWindowResult is the derived availability summary for one window.
type UptimeWindowResult struct {
	Probes            []*UptimeProbe     `json:"probes"`
	UptimePercentage  float64            `json:"uptimePercentage"`
	DowntimeIntervals []DowntimeInterval `json:"downtimeIntervals"`
}
