package http

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"logwatch/internal/ingestors"
	ingestormocks "logwatch/internal/ingestors/mocks"
	"logwatch/internal/models"
	"logwatch/internal/queries"
	querymocks "logwatch/internal/queries/mocks"
	"logwatch/internal/shared/svcerrors"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	router       http.Handler
	queryService *querymocks.MockQueryService
	ingestor     *ingestormocks.MockLogFileIngestor
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	queryService := querymocks.NewMockQueryService(ctrl)
	ingestor := ingestormocks.NewMockLogFileIngestor(ctrl)
	return &routerFixture{
		router:       NewRouter(queryService, ingestor, zerolog.Nop()),
		queryService: queryService,
		ingestor:     ingestor,
	}
}

func (f *routerFixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func TestListLogsEndpoint(t *testing.T) {
	t.Parallel()
	fixture := newRouterFixture(t)

	record := &models.AccessLogRecord{
		RecordID:      "01HZX0000000000000000000AA",
		TimestampUTC:  time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		ClientAddress: "203.0.113.7",
		HttpMethod:    "GET",
		RequestURI:    "/api/orders",
		StatusCode:    500,
	}

	var seenCriteria models.FilterCriteria
	var seenCursor string
	fixture.queryService.EXPECT().
		ListAccessLogs(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, criteria models.FilterCriteria, cursor string) (*queries.AccessLogPage, *svcerrors.ServiceError) {
			seenCriteria = criteria
			seenCursor = cursor
			return &queries.AccessLogPage{
				Records:    []*models.AccessLogRecord{record},
				TotalCount: 12,
				NextCursor: "bzoy",
			}, nil
		})

	rr := fixture.get(t, "/logs?from=2025-01-01T00:00:00Z&to=2025-01-02T00:00:00Z&status=5xx&limit=1&cursor=bzox&sort=status_code&order=desc")

	require.Equal(t, http.StatusOK, rr.Code)
	var response AccessLogPageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.NotEmpty(t, response.RequestID)
	require.Len(t, response.Records, 1)
	assert.Equal(t, record.RecordID, response.Records[0].RecordID)
	assert.Equal(t, int64(12), response.TotalCount)
	assert.Equal(t, "bzoy", response.NextCursor)

	assert.Equal(t, "bzox", seenCursor)
	require.NotNil(t, seenCriteria.TimeRange)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), seenCriteria.TimeRange.From)
	assert.Equal(t, 5, seenCriteria.Status.Class)
	assert.Equal(t, 1, seenCriteria.Limit)
	assert.Equal(t, models.SortByStatusCode, seenCriteria.SortBy)
	assert.True(t, seenCriteria.SortDesc)
}

func TestListLogsEndpointRejectsBadParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		target       string
		expectedCode string
	}{
		{"bad from timestamp", "/logs?from=yesterday&to=2025-01-02T00:00:00Z", codeInvalidTimeParam},
		{"bad status filter", "/logs?from=2025-01-01T00:00:00Z&to=2025-01-02T00:00:00Z&status=9zz", codeInvalidStatusParam},
		{"negative limit", "/logs?from=2025-01-01T00:00:00Z&to=2025-01-02T00:00:00Z&limit=-2", codeInvalidPageParam},
		{"unknown sort key", "/logs?from=2025-01-01T00:00:00Z&to=2025-01-02T00:00:00Z&sort=bytes", codeInvalidSortParam},
		{"unknown order", "/logs?from=2025-01-01T00:00:00Z&to=2025-01-02T00:00:00Z&order=sideways", codeInvalidSortParam},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fixture := newRouterFixture(t)

			rr := fixture.get(t, tc.target)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
			assert.Equal(t, tc.expectedCode, response.ErrorCode)
		})
	}
}

func TestExportLogsEndpointWritesCSV(t *testing.T) {
	t.Parallel()
	fixture := newRouterFixture(t)

	records := []*models.AccessLogRecord{
		{
			RecordID:      "01HZX0000000000000000000AA",
			TimestampUTC:  time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			ClientAddress: "203.0.113.7",
			HttpMethod:    "GET",
			RequestURI:    "/api/orders",
			StatusCode:    200,
			ResponseTime:  150 * time.Millisecond,
			UserAgent:     "curl/8.0",
		},
		{
			RecordID:     "01HZX0000000000000000000AB",
			TimestampUTC: time.Date(2025, 1, 1, 10, 0, 5, 0, time.UTC),
			HttpMethod:   "POST",
			RequestURI:   "/login",
			StatusCode:   302,
		},
	}
	fixture.queryService.EXPECT().
		ExportAccessLogs(gomock.Any(), gomock.Any()).
		Return(records, nil)

	rr := fixture.get(t, "/logs/export?from=2025-01-01T00:00:00Z&to=2025-01-02T00:00:00Z")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, contentTypeCSV, rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "access-logs.csv")

	rows, err := csv.NewReader(strings.NewReader(rr.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, "01HZX0000000000000000000AA", rows[1][0])
	assert.Equal(t, "2025-01-01T10:00:00Z", rows[1][1])
	assert.Equal(t, "150", rows[1][6])
	assert.Equal(t, "302", rows[2][5])
}

func TestUptimeSummaryEndpoint(t *testing.T) {
	t.Parallel()
	fixture := newRouterFixture(t)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	fixture.queryService.EXPECT().
		GetUptimeSummary(gomock.Any(), models.TimeRange{From: from, To: to}).
		Return(&models.UptimeWindowResult{
			Probes:           []*models.UptimeProbe{{ProbeID: "p1", Status: models.ProbeUp}},
			UptimePercentage: 99.5,
			DowntimeIntervals: []models.DowntimeInterval{
				{Start: from.Add(time.Hour), End: from.Add(2 * time.Hour), Duration: time.Hour},
			},
		}, nil)

	rr := fixture.get(t, "/uptime/summary?from=2025-01-01T00:00:00Z&to=2025-01-02T00:00:00Z")

	require.Equal(t, http.StatusOK, rr.Code)
	var response UptimeSummaryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 1, response.ProbeCount)
	assert.InDelta(t, 99.5, response.UptimePercentage, 0.001)
	require.Len(t, response.DowntimeIntervals, 1)
	assert.Equal(t, from.Add(time.Hour), response.DowntimeIntervals[0].Start)
}

func TestUptimeEndpointPropagatesServiceError(t *testing.T) {
	t.Parallel()
	fixture := newRouterFixture(t)

	fixture.queryService.EXPECT().
		ListUptime(gomock.Any(), gomock.Any()).
		Return(nil, svcerrors.NewScopeTooLargeError("QRY_1004", "query exceeds the configured scan budget", nil))

	rr := fixture.get(t, "/uptime?from=2020-01-01T00:00:00Z&to=2025-01-01T00:00:00Z")

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "scope_too_large", response.ErrorCategory)
}

func TestStatisticsEndpoint(t *testing.T) {
	t.Parallel()
	fixture := newRouterFixture(t)

	fixture.queryService.EXPECT().
		GetStatistics(gomock.Any(), gomock.Any()).
		Return(&queries.Statistics{
			TotalCount:          3,
			RequestsByStatus:    map[int]int64{200: 2, 500: 1},
			RequestsByUserAgent: map[string]int64{"Chrome": 2, "unknown": 1},
		}, nil)

	rr := fixture.get(t, "/statistics?from=2025-01-01T00:00:00Z&to=2025-01-02T00:00:00Z")

	require.Equal(t, http.StatusOK, rr.Code)
	var response StatisticsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, int64(3), response.TotalCount)
	assert.Equal(t, int64(2), response.RequestsByStatus[200])
	assert.Equal(t, int64(1), response.RequestsByUserAgent["unknown"])
}

func TestHealthzEndpointExposesIngestionStats(t *testing.T) {
	t.Parallel()
	fixture := newRouterFixture(t)

	fixture.ingestor.EXPECT().
		Stats().
		Return(ingestors.Stats{
			ParseFailureTotal:   4,
			DroppedTotal:        1,
			LastCursorOffset:    2048,
			LastCursorUpdatedAt: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			LastCycleDuration:   120 * time.Millisecond,
		})

	rr := fixture.get(t, "/healthz")

	require.Equal(t, http.StatusOK, rr.Code)
	var response HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, int64(4), response.Ingestion.ParseFailureTotal)
	assert.Equal(t, int64(1), response.Ingestion.DroppedTotal)
	assert.Equal(t, int64(2048), response.Ingestion.CursorOffset)
	assert.Equal(t, int64(120), response.Ingestion.LastCycleDurationMs)
}
