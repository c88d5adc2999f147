package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type SortKey string

const (
	SortByTimestamp  SortKey = "timestamp"
	SortByStatusCode SortKey = "status_code"
)

// TimeRange is a half-open interval [From, To).
type TimeRange struct {
	From time.Time
	To   time.Time
}

func (r TimeRange) Span() time.Duration {
	return r.To.Sub(r.From)
}

// Contains reports whether t falls inside the half-open range.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// StatusPredicate matches a status code exactly ("500") or by class ("5xx").
// The zero value matches everything.
type StatusPredicate struct {
	Exact int // 0 means unset
	Class int // 0 means unset; 5 matches 500-599
}

// ParseStatusPredicate parses "500" or "5xx" style expressions.
func ParseStatusPredicate(expr string) (StatusPredicate, error) {
	expr = strings.TrimSpace(strings.ToLower(expr))
	if expr == "" {
		return StatusPredicate{}, nil
	}
	if strings.HasSuffix(expr, "xx") && len(expr) == 3 {
		class := int(expr[0] - '0')
		if class < 1 || class > 5 {
			return StatusPredicate{}, fmt.Errorf("invalid status class %q", expr)
		}
		return StatusPredicate{Class: class}, nil
	}
	code, err := strconv.Atoi(expr)
	if err != nil || code < 100 || code > 599 {
		return StatusPredicate{}, fmt.Errorf("invalid status code %q", expr)
	}
	return StatusPredicate{Exact: code}, nil
}

func (p StatusPredicate) IsZero() bool {
	return p.Exact == 0 && p.Class == 0
}

func (p StatusPredicate) Matches(code int) bool {
	if p.Exact != 0 {
		return code == p.Exact
	}
	if p.Class != 0 {
		return code/100 == p.Class
	}
	return true
}

// FilterCriteria is the transient query input for access-log queries.
// TimeRange is mandatory: unbounded scans over full history are rejected.
type FilterCriteria struct {
	TimeRange     *TimeRange
	Status        StatusPredicate
	URIContains   string
	ClientAddress string

	Limit    int
	Offset   int
	SortBy   SortKey
	SortDesc bool
}

// Matches reports whether the record passes every non-time filter.
// The time bound is applied at the partition scan, not here.
func (c FilterCriteria) Matches(record *AccessLogRecord) bool {
	if !c.Status.Matches(record.StatusCode) {
		return false
	}
	if c.URIContains != "" && !strings.Contains(record.RequestURI, c.URIContains) {
		return false
	}
	if c.ClientAddress != "" && record.ClientAddress != c.ClientAddress {
		return false
	}
	return true
}
