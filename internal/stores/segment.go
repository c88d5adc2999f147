package stores

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"logwatch/internal/models"
	"logwatch/internal/shared/filestorages"
)

var (
	ErrTimeBoundRequired  = errors.New("query requires an explicit time bound")
	ErrRangeTooLarge      = errors.New("time range exceeds the configured scan budget")
	ErrScanBudgetExceeded = errors.New("row scan budget exceeded")
)

// ScanBudget caps how much history a single query may touch. Both limits are
// cost controls: an unbounded scan over full history is never allowed.
type ScanBudget struct {
	MaxRangeSpan time.Duration
	MaxScanRows  int
}

func (b ScanBudget) checkRange(r *models.TimeRange) error {
	if r == nil || r.From.IsZero() || r.To.IsZero() {
		return ErrTimeBoundRequired
	}
	if b.MaxRangeSpan > 0 && r.Span() > b.MaxRangeSpan {
		return fmt.Errorf("%w: span %s > %s", ErrRangeTooLarge, r.Span(), b.MaxRangeSpan)
	}
	return nil
}

const segmentDayLayout = "2006/01/02"

// segmentKey maps a UTC day to its NDJSON segment. Partitioning by day keeps
// appends cheap and lets range queries open only the covered segments.
func segmentKey(dir string, day time.Time) string {
	return dir + "/" + day.UTC().Format(segmentDayLayout) + ".ndjson"
}

// segmentKeysInRange returns the segment keys covering the half-open range
// [from, to), oldest first.
func segmentKeysInRange(dir string, r models.TimeRange) []string {
	var keys []string
	day := r.From.UTC().Truncate(24 * time.Hour)
	for day.Before(r.To) {
		keys = append(keys, segmentKey(dir, day))
		day = day.Add(24 * time.Hour)
	}
	return keys
}

// existingSegmentKeys narrows the day keys covering r to segments that are
// actually present under dir. A sparse history costs one directory listing
// instead of a probe for every absent day in the range.
func existingSegmentKeys(ctx context.Context, storage filestorages.FileStorage, dir string, r models.TimeRange) ([]string, error) {
	present, err := storage.List(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list segments under %s: %w", dir, err)
	}
	if len(present) == 0 {
		return nil, nil
	}

	presentSet := make(map[string]struct{}, len(present))
	for _, key := range present {
		presentSet[key] = struct{}{}
	}

	var keys []string
	for _, key := range segmentKeysInRange(dir, r) {
		if _, ok := presentSet[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// readSegment decodes every complete record line in one segment. A missing
// segment is an empty result. A torn trailing line (an append cut short by a
// crash) is ignored; corruption anywhere else is surfaced.
func readSegment[T any](ctx context.Context, storage filestorages.FileStorage, key string) ([]*T, error) {
	readCloser, err := storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open segment %s: %w", key, err)
	}
	defer readCloser.Close()

	var (
		records []*T
		lines   [][]byte
	)
	scanner := bufio.NewScanner(readCloser)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := make([]byte, len(scanner.Bytes()))
		copy(line, scanner.Bytes())
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read segment %s: %w", key, err)
	}

	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		record := new(T)
		if err := json.Unmarshal(line, record); err != nil {
			if i == len(lines)-1 {
				break
			}
			return nil, fmt.Errorf("corrupt record in segment %s at line %d: %w", key, i+1, err)
		}
		records = append(records, record)
	}

	return records, nil
}
