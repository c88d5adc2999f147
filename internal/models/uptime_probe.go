package models

import "time"

type ProbeStatus string

const (
	ProbeUp   ProbeStatus = "UP"
	ProbeDown ProbeStatus = "DOWN"
)

// UptimeProbe is one availability measurement. Probes may arrive with
// timestamps out of insertion order (clock skew); queries always order by
// TimestampUTC, never by insertion order.
type UptimeProbe struct {
	ProbeID      string      `json:"probeId"`
	TimestampUTC time.Time   `json:"timestampUtc"`
	Status       ProbeStatus `json:"status"`
	Source       string      `json:"source"`
	Details      string      `json:"details,omitempty"`
}

func (s ProbeStatus) Valid() bool {
	return s == ProbeUp || s == ProbeDown
}
