package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"logwatch/internal/models"
	"logwatch/internal/shared/filestorages"
	"logwatch/internal/shared/ulid"
)

// AccessLogStore is append-only, timestamp-indexed persistence for access-log
// records. Appends never overwrite or mutate existing records; queries are
// read-only and must carry a time bound. A query spanning several day
// partitions yields a single correctly ordered merged result.
//
//go:generate mockgen -source=access_log_store.go -destination=./mocks/access_log_store_mock.go -package=mocks
type AccessLogStore interface {
	Append(ctx context.Context, record *models.AccessLogRecord) error
	Query(ctx context.Context, criteria models.FilterCriteria) ([]*models.AccessLogRecord, error)
	// Count returns the total match count without materializing or ordering
	// the full result set.
	Count(ctx context.Context, criteria models.FilterCriteria) (int64, error)
}

type accessLogStore struct {
	fileStorage filestorages.FileStorage
	budget      ScanBudget
	dir         string
}

func NewAccessLogStore(fileStorage filestorages.FileStorage, budget ScanBudget) AccessLogStore {
	return &accessLogStore{fileStorage: fileStorage, budget: budget, dir: "access-logs"}
}

func (s *accessLogStore) Append(ctx context.Context, record *models.AccessLogRecord) error {
	if record.TimestampUTC.IsZero() {
		return fmt.Errorf("access log record requires a timestamp")
	}
	if record.RecordID == "" {
		record.RecordID = ulid.NewULID()
	}

	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal access log record: %w", err)
	}

	key := segmentKey(s.dir, record.TimestampUTC)
	if err := s.fileStorage.Append(ctx, key, jsonData); err != nil {
		return fmt.Errorf("failed to append access log record: %w", err)
	}
	return nil
}

func (s *accessLogStore) Query(ctx context.Context, criteria models.FilterCriteria) ([]*models.AccessLogRecord, error) {
	matches, err := s.scan(ctx, criteria)
	if err != nil {
		return nil, err
	}

	sortRecords(matches, criteria.SortBy, criteria.SortDesc)

	if criteria.Offset > 0 {
		if criteria.Offset >= len(matches) {
			return []*models.AccessLogRecord{}, nil
		}
		matches = matches[criteria.Offset:]
	}
	if criteria.Limit > 0 && len(matches) > criteria.Limit {
		matches = matches[:criteria.Limit]
	}
	return matches, nil
}

func (s *accessLogStore) Count(ctx context.Context, criteria models.FilterCriteria) (int64, error) {
	matches, err := s.scan(ctx, criteria)
	if err != nil {
		return 0, err
	}
	return int64(len(matches)), nil
}

// scan walks the existing day partitions covered by the time range and
// applies every non-time filter, enforcing the row scan budget as it goes.
func (s *accessLogStore) scan(ctx context.Context, criteria models.FilterCriteria) ([]*models.AccessLogRecord, error) {
	if err := s.budget.checkRange(criteria.TimeRange); err != nil {
		return nil, err
	}

	keys, err := existingSegmentKeys(ctx, s.fileStorage, s.dir, *criteria.TimeRange)
	if err != nil {
		return nil, err
	}

	scanned := 0
	matches := []*models.AccessLogRecord{}
	for _, key := range keys {
		records, err := readSegment[models.AccessLogRecord](ctx, s.fileStorage, key)
		if err != nil {
			return nil, err
		}
		scanned += len(records)
		if s.budget.MaxScanRows > 0 && scanned > s.budget.MaxScanRows {
			return nil, fmt.Errorf("%w: scanned more than %d rows", ErrScanBudgetExceeded, s.budget.MaxScanRows)
		}
		for _, record := range records {
			if !criteria.TimeRange.Contains(record.TimestampUTC) {
				continue
			}
			if !criteria.Matches(record) {
				continue
			}
			matches = append(matches, record)
		}
	}
	return matches, nil
}

// sortRecords orders by the requested key with a deterministic tie-break:
// timestamp, then record ID (ULIDs carry insertion sequence).
func sortRecords(records []*models.AccessLogRecord, key models.SortKey, desc bool) {
	less := func(a, b *models.AccessLogRecord) bool {
		if key == models.SortByStatusCode && a.StatusCode != b.StatusCode {
			return a.StatusCode < b.StatusCode
		}
		if !a.TimestampUTC.Equal(b.TimestampUTC) {
			return a.TimestampUTC.Before(b.TimestampUTC)
		}
		return a.RecordID < b.RecordID
	}
	sort.SliceStable(records, func(i, j int) bool {
		if desc {
			return less(records[j], records[i])
		}
		return less(records[i], records[j])
	})
}
