package queries

import (
	"context"
	"errors"
	"time"

	"logwatch/internal/aggregators"
	"logwatch/internal/models"
	"logwatch/internal/shared/loggers"
	"logwatch/internal/shared/svcerrors"
	"logwatch/internal/stores"
)

const defaultPageSize = 50

type AccessLogPage struct {
	Records    []*models.AccessLogRecord
	TotalCount int64
	// NextCursor is empty on the last page.
	NextCursor string
}

type Statistics struct {
	TotalCount          int64
	RequestsByStatus    map[int]int64
	RequestsByUserAgent map[string]int64
}

//go:generate mockgen -source=query_service.go -destination=./mocks/query_service_mock.go -package=mocks
type QueryService interface {
	ListAccessLogs(ctx context.Context, criteria models.FilterCriteria, pageCursor string) (*AccessLogPage, *svcerrors.ServiceError)

	// ExportAccessLogs returns the full filtered sequence in timestamp order,
	// ignoring any pagination in the criteria.
	ExportAccessLogs(ctx context.Context, criteria models.FilterCriteria) ([]*models.AccessLogRecord, *svcerrors.ServiceError)

	ListUptime(ctx context.Context, timeRange models.TimeRange) ([]*models.UptimeProbe, *svcerrors.ServiceError)

	// GetUptimeSummary summarizes the probe window; the range end doubles as
	// the close for a downtime run still open at the edge of the window.
	GetUptimeSummary(ctx context.Context, timeRange models.TimeRange) (*models.UptimeWindowResult, *svcerrors.ServiceError)

	GetStatistics(ctx context.Context, criteria models.FilterCriteria) (*Statistics, *svcerrors.ServiceError)
}

type queryService struct {
	accessLogStore   stores.AccessLogStore
	uptimeProbeStore stores.UptimeProbeStore
	uptimeSummarizer aggregators.UptimeSummarizer
	maxPageSize      int
}

func NewQueryService(
	accessLogStore stores.AccessLogStore,
	uptimeProbeStore stores.UptimeProbeStore,
	uptimeSummarizer aggregators.UptimeSummarizer,
	maxPageSize int,
) QueryService {
	return &queryService{
		accessLogStore:   accessLogStore,
		uptimeProbeStore: uptimeProbeStore,
		uptimeSummarizer: uptimeSummarizer,
		maxPageSize:      maxPageSize,
	}
}

func (s *queryService) ListAccessLogs(ctx context.Context, criteria models.FilterCriteria, pageCursor string) (*AccessLogPage, *svcerrors.ServiceError) {
	start := time.Now()
	if svcErr := s.validateCriteria(criteria); svcErr != nil {
		observeQuery(valueOpListLogs, start, svcErr)
		return nil, svcErr
	}
	if criteria.Limit < 0 || criteria.Limit > s.maxPageSize {
		svcErr := errInvalidPagination("limit must be between 0 and the configured maximum page size")
		observeQuery(valueOpListLogs, start, svcErr)
		return nil, svcErr
	}
	if criteria.Limit == 0 {
		// The default never exceeds the configured maximum.
		criteria.Limit = defaultPageSize
		if criteria.Limit > s.maxPageSize {
			criteria.Limit = s.maxPageSize
		}
	}
	if pageCursor != "" {
		offset, err := decodeCursor(pageCursor)
		if err != nil {
			svcErr := errInvalidCursor(err)
			observeQuery(valueOpListLogs, start, svcErr)
			return nil, svcErr
		}
		criteria.Offset = offset
	}
	if criteria.Offset < 0 {
		svcErr := errInvalidPagination("offset must not be negative")
		observeQuery(valueOpListLogs, start, svcErr)
		return nil, svcErr
	}

	records, err := s.accessLogStore.Query(ctx, criteria)
	if err != nil {
		svcErr := s.mapStoreError(err)
		observeQuery(valueOpListLogs, start, svcErr)
		return nil, svcErr
	}

	// The total is counted against the same filters but without pagination,
	// so clients can render page controls for the whole result set.
	totalCount, err := s.accessLogStore.Count(ctx, criteria)
	if err != nil {
		svcErr := s.mapStoreError(err)
		observeQuery(valueOpListLogs, start, svcErr)
		return nil, svcErr
	}

	page := &AccessLogPage{
		Records:    records,
		TotalCount: totalCount,
	}
	if int64(criteria.Offset+len(records)) < totalCount {
		page.NextCursor = encodeCursor(criteria.Offset + criteria.Limit)
	}

	loggers.Ctx(ctx).Debug().
		Int(loggers.FieldLineCount, len(records)).
		Int64("totalCount", totalCount).
		Msg("access log page served")
	observeQuery(valueOpListLogs, start, nil)
	return page, nil
}

func (s *queryService) ExportAccessLogs(ctx context.Context, criteria models.FilterCriteria) ([]*models.AccessLogRecord, *svcerrors.ServiceError) {
	start := time.Now()
	if svcErr := s.validateCriteria(criteria); svcErr != nil {
		observeQuery(valueOpExportLogs, start, svcErr)
		return nil, svcErr
	}

	criteria.Limit = 0
	criteria.Offset = 0
	criteria.SortBy = models.SortByTimestamp
	criteria.SortDesc = false

	records, err := s.accessLogStore.Query(ctx, criteria)
	if err != nil {
		svcErr := s.mapStoreError(err)
		observeQuery(valueOpExportLogs, start, svcErr)
		return nil, svcErr
	}

	observeQuery(valueOpExportLogs, start, nil)
	return records, nil
}

func (s *queryService) ListUptime(ctx context.Context, timeRange models.TimeRange) ([]*models.UptimeProbe, *svcerrors.ServiceError) {
	start := time.Now()
	if svcErr := s.validateTimeRange(timeRange); svcErr != nil {
		observeQuery(valueOpListUptime, start, svcErr)
		return nil, svcErr
	}

	probes, err := s.uptimeProbeStore.Query(ctx, timeRange)
	if err != nil {
		svcErr := s.mapStoreError(err)
		observeQuery(valueOpListUptime, start, svcErr)
		return nil, svcErr
	}

	observeQuery(valueOpListUptime, start, nil)
	return probes, nil
}

func (s *queryService) GetUptimeSummary(ctx context.Context, timeRange models.TimeRange) (*models.UptimeWindowResult, *svcerrors.ServiceError) {
	start := time.Now()
	if svcErr := s.validateTimeRange(timeRange); svcErr != nil {
		observeQuery(valueOpUptimeSummary, start, svcErr)
		return nil, svcErr
	}

	probes, err := s.uptimeProbeStore.Query(ctx, timeRange)
	if err != nil {
		svcErr := s.mapStoreError(err)
		observeQuery(valueOpUptimeSummary, start, svcErr)
		return nil, svcErr
	}

	result := s.uptimeSummarizer.Summarize(probes, timeRange.To)
	observeQuery(valueOpUptimeSummary, start, nil)
	return result, nil
}

func (s *queryService) GetStatistics(ctx context.Context, criteria models.FilterCriteria) (*Statistics, *svcerrors.ServiceError) {
	start := time.Now()
	if svcErr := s.validateCriteria(criteria); svcErr != nil {
		observeQuery(valueOpStatistics, start, svcErr)
		return nil, svcErr
	}

	criteria.Limit = 0
	criteria.Offset = 0

	records, err := s.accessLogStore.Query(ctx, criteria)
	if err != nil {
		svcErr := s.mapStoreError(err)
		observeQuery(valueOpStatistics, start, svcErr)
		return nil, svcErr
	}

	statistics := summarizeRecords(records)
	observeQuery(valueOpStatistics, start, nil)
	return statistics, nil
}

func (s *queryService) validateCriteria(criteria models.FilterCriteria) *svcerrors.ServiceError {
	if criteria.TimeRange == nil {
		return errTimeRangeRequired()
	}
	return s.validateTimeRange(*criteria.TimeRange)
}

func (s *queryService) validateTimeRange(timeRange models.TimeRange) *svcerrors.ServiceError {
	if timeRange.From.IsZero() || timeRange.To.IsZero() {
		return errTimeRangeRequired()
	}
	if timeRange.From.After(timeRange.To) {
		return errInvalidTimeRange("time range start must not be after end")
	}
	return nil
}

// mapStoreError translates store sentinels into client-facing errors.
// Budget violations are not internal faults: the query was well-formed
// but asked for more history than the service is willing to scan.
func (s *queryService) mapStoreError(err error) *svcerrors.ServiceError {
	switch {
	case errors.Is(err, stores.ErrTimeBoundRequired):
		return errTimeRangeRequired()
	case errors.Is(err, stores.ErrRangeTooLarge), errors.Is(err, stores.ErrScanBudgetExceeded):
		return errScopeTooLarge(err)
	default:
		return errInternalStoreFailed(err)
	}
}

func observeQuery(operation string, start time.Time, svcErr *svcerrors.ServiceError) {
	errorCode := ""
	if svcErr != nil {
		errorCode = svcErr.Code
	}
	metricQueriesTotal.WithLabelValues(operation, errorCode).Inc()
	metricQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
