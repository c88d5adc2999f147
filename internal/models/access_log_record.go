package models

import "time"

// AccessLogRecord is one parsed HTTP request observation from an access log.
// Records are immutable once stored; TimestampUTC is the ordering key and is
// always normalized to UTC at parse time.
type AccessLogRecord struct {
	RecordID      string        `json:"recordId"`
	TimestampUTC  time.Time     `json:"timestampUtc"`
	ClientAddress string        `json:"clientAddress"`
	HttpMethod    string        `json:"httpMethod"`
	RequestURI    string        `json:"requestUri"`
	StatusCode    int           `json:"statusCode"`
	ResponseTime  time.Duration `json:"responseTime,omitempty"`
	UserAgent     string        `json:"userAgent,omitempty"`
	RawLine       string        `json:"rawLine,omitempty"`
}
