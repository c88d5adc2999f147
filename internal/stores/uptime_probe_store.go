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

// UptimeProbeStore is append-only persistence for availability probes.
// Probes may arrive with out-of-order timestamps (clock skew); the store never
// reorders on write, ordering is enforced at query time.
//
//go:generate mockgen -source=uptime_probe_store.go -destination=./mocks/uptime_probe_store_mock.go -package=mocks
type UptimeProbeStore interface {
	Append(ctx context.Context, probe *models.UptimeProbe) error
	// Query returns the probes in [From, To) ordered by timestamp ascending.
	Query(ctx context.Context, timeRange models.TimeRange) ([]*models.UptimeProbe, error)
}

type uptimeProbeStore struct {
	fileStorage filestorages.FileStorage
	budget      ScanBudget
	dir         string
}

func NewUptimeProbeStore(fileStorage filestorages.FileStorage, budget ScanBudget) UptimeProbeStore {
	return &uptimeProbeStore{fileStorage: fileStorage, budget: budget, dir: "uptime-probes"}
}

func (s *uptimeProbeStore) Append(ctx context.Context, probe *models.UptimeProbe) error {
	if probe.TimestampUTC.IsZero() {
		return fmt.Errorf("uptime probe requires a timestamp")
	}
	if !probe.Status.Valid() {
		return fmt.Errorf("invalid probe status %q", probe.Status)
	}
	if probe.ProbeID == "" {
		probe.ProbeID = ulid.NewULID()
	}

	jsonData, err := json.Marshal(probe)
	if err != nil {
		return fmt.Errorf("failed to marshal uptime probe: %w", err)
	}

	key := segmentKey(s.dir, probe.TimestampUTC)
	if err := s.fileStorage.Append(ctx, key, jsonData); err != nil {
		return fmt.Errorf("failed to append uptime probe: %w", err)
	}
	return nil
}

func (s *uptimeProbeStore) Query(ctx context.Context, timeRange models.TimeRange) ([]*models.UptimeProbe, error) {
	if err := s.budget.checkRange(&timeRange); err != nil {
		return nil, err
	}

	keys, err := existingSegmentKeys(ctx, s.fileStorage, s.dir, timeRange)
	if err != nil {
		return nil, err
	}

	scanned := 0
	matches := []*models.UptimeProbe{}
	for _, key := range keys {
		probes, err := readSegment[models.UptimeProbe](ctx, s.fileStorage, key)
		if err != nil {
			return nil, err
		}
		scanned += len(probes)
		if s.budget.MaxScanRows > 0 && scanned > s.budget.MaxScanRows {
			return nil, fmt.Errorf("%w: scanned more than %d rows", ErrScanBudgetExceeded, s.budget.MaxScanRows)
		}
		for _, probe := range probes {
			if timeRange.Contains(probe.TimestampUTC) {
				matches = append(matches, probe)
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].TimestampUTC.Equal(matches[j].TimestampUTC) {
			return matches[i].TimestampUTC.Before(matches[j].TimestampUTC)
		}
		return matches[i].ProbeID < matches[j].ProbeID
	})
	return matches, nil
}
