package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusPredicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		want    StatusPredicate
		wantErr bool
	}{
		{name: "empty matches all", expr: "", want: StatusPredicate{}},
		{name: "exact code", expr: "500", want: StatusPredicate{Exact: 500}},
		{name: "class 5xx", expr: "5xx", want: StatusPredicate{Class: 5}},
		{name: "class uppercase", expr: "4XX", want: StatusPredicate{Class: 4}},
		{name: "code below range", expr: "42", wantErr: true},
		{name: "code above range", expr: "600", wantErr: true},
		{name: "invalid class digit", expr: "6xx", wantErr: true},
		{name: "garbage", expr: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatusPredicate(tt.expr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusPredicate_Matches(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusPredicate{}.Matches(204))
	assert.True(t, StatusPredicate{Exact: 500}.Matches(500))
	assert.False(t, StatusPredicate{Exact: 500}.Matches(502))
	assert.True(t, StatusPredicate{Class: 5}.Matches(502))
	assert.False(t, StatusPredicate{Class: 5}.Matches(404))
}

func TestFilterCriteria_Matches(t *testing.T) {
	t.Parallel()

	record := &AccessLogRecord{
		RecordID:      "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		TimestampUTC:  time.Date(2025, 1, 1, 0, 30, 0, 0, time.UTC),
		ClientAddress: "203.0.113.7",
		HttpMethod:    "GET",
		RequestURI:    "/api/orders/42",
		StatusCode:    500,
	}

	assert.True(t, FilterCriteria{}.Matches(record))
	assert.True(t, FilterCriteria{Status: StatusPredicate{Class: 5}}.Matches(record))
	assert.True(t, FilterCriteria{URIContains: "/api/orders"}.Matches(record))
	assert.True(t, FilterCriteria{ClientAddress: "203.0.113.7"}.Matches(record))
	assert.False(t, FilterCriteria{Status: StatusPredicate{Exact: 404}}.Matches(record))
	assert.False(t, FilterCriteria{URIContains: "/admin"}.Matches(record))
	assert.False(t, FilterCriteria{ClientAddress: "198.51.100.1"}.Matches(record))
}

func TestTimeRange_Contains(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC)
	r := TimeRange{From: from, To: to}

	assert.True(t, r.Contains(from), "lower bound is inclusive")
	assert.False(t, r.Contains(to), "upper bound is exclusive")
	assert.True(t, r.Contains(from.Add(30*time.Minute)))
	assert.False(t, r.Contains(from.Add(-time.Second)))
}
