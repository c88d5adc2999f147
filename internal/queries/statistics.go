package queries

import (
	"logwatch/internal/models"

	"github.com/mileusna/useragent"
)

// summarizeRecords builds the status-code histogram and user-agent breakdown
// over an already-filtered record set.
func summarizeRecords(records []*models.AccessLogRecord) *Statistics {
	statistics := &Statistics{
		TotalCount:          int64(len(records)),
		RequestsByStatus:    make(map[int]int64),
		RequestsByUserAgent: make(map[string]int64),
	}
	for _, record := range records {
		statistics.RequestsByStatus[record.StatusCode]++
		statistics.RequestsByUserAgent[normalizeUserAgent(record.UserAgent)]++
	}
	return statistics
}

// normalizeUserAgent parses the user agent to extract the family, or returns
// the original string if parsing yields nothing.
func normalizeUserAgent(ua string) string {
	if ua == "" {
		return "unknown"
	}
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
