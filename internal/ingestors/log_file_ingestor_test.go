package ingestors_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"logwatch/internal/ingestors"
	"logwatch/internal/models"
	"logwatch/internal/parsers"
	"logwatch/internal/shared/filestorages"
	"logwatch/internal/stores"
	storemocks "logwatch/internal/stores/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	goodLine1 = `203.0.113.7 - - [01/Jan/2025:10:00:00 +0000] "GET /api/orders HTTP/1.1" 200 512 "-" "Mozilla/5.0"` + "\n"
	goodLine2 = `203.0.113.8 - - [01/Jan/2025:10:00:05 +0000] "POST /login HTTP/1.1" 302 128 "-" "curl/8.0"` + "\n"
	badLine   = "this is not an access log line\n"
)

type ingestorFixture struct {
	ingestor    ingestors.LogFileIngestor
	store       stores.AccessLogStore
	sourcePath  string
	cursorStore ingestors.CursorStore
}

func newIngestorFixture(t *testing.T) *ingestorFixture {
	t.Helper()

	storage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	parser, err := parsers.NewNginxLineParser(parsers.FormatCombinedExtended)
	require.NoError(t, err)

	store := stores.NewAccessLogStore(storage, stores.ScanBudget{MaxRangeSpan: 31 * 24 * time.Hour, MaxScanRows: 100000})
	cursorStore := ingestors.NewCursorStore(storage)
	sourcePath := filepath.Join(t.TempDir(), "access.log")

	ingestor := ingestors.NewLogFileIngestor(ingestors.IngestorOptions{
		SourcePath:       sourcePath,
		Interval:         time.Second,
		CycleBudget:      5 * time.Second,
		AppendMaxRetries: 2,
		AppendBackoff:    time.Millisecond,
	}, parser, store, cursorStore, zerolog.Nop())

	return &ingestorFixture{
		ingestor:    ingestor,
		store:       store,
		sourcePath:  sourcePath,
		cursorStore: cursorStore,
	}
}

func (f *ingestorFixture) appendSource(t *testing.T, content string) {
	t.Helper()
	file, err := os.OpenFile(f.sourcePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = file.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, file.Close())
}

func (f *ingestorFixture) queryAll(t *testing.T) []*models.AccessLogRecord {
	t.Helper()
	records, err := f.store.Query(context.Background(), models.FilterCriteria{
		TimeRange: &models.TimeRange{
			From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	return records
}

func TestRunCycle_ParsesAndStoresLines(t *testing.T) {
	t.Parallel()

	fixture := newIngestorFixture(t)
	fixture.appendSource(t, goodLine1+badLine+goodLine2)

	result, err := fixture.ingestor.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.LinesRead)
	assert.Equal(t, 2, result.Stored)
	assert.Equal(t, 1, result.ParseFailures)
	assert.Equal(t, 0, result.Dropped)
	assert.Equal(t, result.LinesRead, result.Stored+result.ParseFailures+result.Dropped)

	records := fixture.queryAll(t)
	require.Len(t, records, 2)
	assert.Equal(t, "/api/orders", records[0].RequestURI)
	assert.Equal(t, "/login", records[1].RequestURI)
}

func TestRunCycle_RerunWithoutNewLinesIsIdempotent(t *testing.T) {
	t.Parallel()

	fixture := newIngestorFixture(t)
	fixture.appendSource(t, goodLine1+goodLine2)

	_, err := fixture.ingestor.RunCycle(context.Background())
	require.NoError(t, err)
	before := fixture.queryAll(t)

	result, err := fixture.ingestor.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.LinesRead, "no new lines to read")

	after := fixture.queryAll(t)
	require.Len(t, after, len(before), "re-run must not duplicate records")

	identities := map[string]bool{}
	for _, record := range before {
		identities[record.RecordID] = true
	}
	for _, record := range after {
		assert.True(t, identities[record.RecordID], "record identity set unchanged")
	}
}

func TestRunCycle_ResumesFromCursor(t *testing.T) {
	t.Parallel()

	fixture := newIngestorFixture(t)
	fixture.appendSource(t, goodLine1)

	_, err := fixture.ingestor.RunCycle(context.Background())
	require.NoError(t, err)

	fixture.appendSource(t, goodLine2)

	result, err := fixture.ingestor.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.LinesRead, "only the appended line is read")
	assert.Len(t, fixture.queryAll(t), 2)
}

func TestRunCycle_IgnoresTrailingPartialLine(t *testing.T) {
	t.Parallel()

	fixture := newIngestorFixture(t)
	fixture.appendSource(t, goodLine1+`203.0.113.9 - - [01/Jan/2025:1`)

	result, err := fixture.ingestor.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.LinesRead)
	assert.Equal(t, 1, result.Stored)

	// Completing the partial line makes it visible to the next cycle.
	fixture.appendSource(t, `0:00:09 +0000] "GET /late HTTP/1.1" 200 1 "-" "-"`+"\n")
	result, err = fixture.ingestor.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stored)
	assert.Len(t, fixture.queryAll(t), 2)
}

func TestRunCycle_TruncatedSourceResetsCursor(t *testing.T) {
	t.Parallel()

	fixture := newIngestorFixture(t)
	fixture.appendSource(t, goodLine1+goodLine2)

	_, err := fixture.ingestor.RunCycle(context.Background())
	require.NoError(t, err)

	// Rotation: file replaced with shorter content.
	require.NoError(t, os.WriteFile(fixture.sourcePath, []byte(goodLine1), 0644))

	result, err := fixture.ingestor.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.LinesRead, "reads from the start after truncation")
}

func TestRunCycle_MissingSourceIsEmptyCycle(t *testing.T) {
	t.Parallel()

	fixture := newIngestorFixture(t)

	result, err := fixture.ingestor.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.LinesRead)
}

func TestRunCycle_DropsLineAfterRetriesExhausted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	parser, err := parsers.NewNginxLineParser(parsers.FormatCombined)
	require.NoError(t, err)

	failingStore := storemocks.NewMockAccessLogStore(ctrl)
	failingStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full")).
		Times(3) // initial attempt + 2 retries

	sourcePath := filepath.Join(t.TempDir(), "access.log")
	require.NoError(t, os.WriteFile(sourcePath, []byte(goodLine1), 0644))

	ingestor := ingestors.NewLogFileIngestor(ingestors.IngestorOptions{
		SourcePath:       sourcePath,
		Interval:         time.Second,
		CycleBudget:      5 * time.Second,
		AppendMaxRetries: 2,
		AppendBackoff:    time.Millisecond,
	}, parser, failingStore, ingestors.NewCursorStore(storage), zerolog.Nop())

	result, err := ingestor.RunCycle(context.Background())
	require.NoError(t, err, "a dropped line never fails the cycle")
	assert.Equal(t, 1, result.LinesRead)
	assert.Equal(t, 0, result.Stored)
	assert.Equal(t, 1, result.Dropped)

	// The cursor still advanced past the dropped line.
	stats := ingestor.Stats()
	assert.Equal(t, int64(len(goodLine1)), stats.LastCursorOffset)
	assert.Equal(t, int64(1), stats.DroppedTotal)
}

func TestRunCycle_BudgetExpiryMidAppendIsNotADrop(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	parser, err := parsers.NewNginxLineParser(parsers.FormatCombined)
	require.NoError(t, err)

	// First append outlives the cycle budget; the retry next cycle succeeds.
	blockingStore := storemocks.NewMockAccessLogStore(ctrl)
	gomock.InOrder(
		blockingStore.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, record *models.AccessLogRecord) error {
				<-ctx.Done()
				return ctx.Err()
			}),
		blockingStore.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil),
	)

	sourcePath := filepath.Join(t.TempDir(), "access.log")
	require.NoError(t, os.WriteFile(sourcePath, []byte(goodLine1), 0644))

	ingestor := ingestors.NewLogFileIngestor(ingestors.IngestorOptions{
		SourcePath:  sourcePath,
		Interval:    time.Second,
		CycleBudget: 50 * time.Millisecond,
	}, parser, blockingStore, ingestors.NewCursorStore(storage), zerolog.Nop())

	result, err := ingestor.RunCycle(context.Background())
	require.NoError(t, err, "a budget-bounded cycle ends cleanly")
	assert.Equal(t, 0, result.Stored)
	assert.Equal(t, 0, result.Dropped, "an in-flight append cut off by the budget is not a drop")
	assert.Equal(t, 0, result.LinesRead)
	assert.Equal(t, int64(0), result.CursorOffset, "cursor stays before the unstored line")
	assert.Equal(t, int64(0), ingestor.Stats().DroppedTotal)

	result, err = ingestor.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stored, "next cycle re-reads and stores the line")
	assert.Equal(t, int64(len(goodLine1)), result.CursorOffset)
}

func TestRunCycle_OverlappingCycleIsSkipped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	parser, err := parsers.NewNginxLineParser(parsers.FormatCombined)
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})

	slowStore := storemocks.NewMockAccessLogStore(ctrl)
	slowStore.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *models.AccessLogRecord) error {
			close(entered)
			<-release
			return nil
		})

	sourcePath := filepath.Join(t.TempDir(), "access.log")
	require.NoError(t, os.WriteFile(sourcePath, []byte(goodLine1), 0644))

	ingestor := ingestors.NewLogFileIngestor(ingestors.IngestorOptions{
		SourcePath:  sourcePath,
		Interval:    time.Second,
		CycleBudget: 5 * time.Second,
	}, parser, slowStore, ingestors.NewCursorStore(storage), zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = ingestor.RunCycle(context.Background())
	}()

	<-entered
	_, err = ingestor.RunCycle(context.Background())
	assert.ErrorIs(t, err, ingestors.ErrCycleInProgress)

	close(release)
	<-done
}

func TestStats_TracksCursorAndFailures(t *testing.T) {
	t.Parallel()

	fixture := newIngestorFixture(t)
	fixture.appendSource(t, goodLine1+badLine)

	_, err := fixture.ingestor.RunCycle(context.Background())
	require.NoError(t, err)

	stats := fixture.ingestor.Stats()
	assert.Equal(t, int64(1), stats.ParseFailureTotal)
	assert.Equal(t, int64(len(goodLine1)+len(badLine)), stats.LastCursorOffset)
	assert.False(t, stats.LastCursorUpdatedAt.IsZero())
	assert.Greater(t, stats.LastCycleDuration, time.Duration(0))
}
