package ingestors

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"logwatch/internal/models"
	"logwatch/internal/parsers"
	"logwatch/internal/shared/loggers"
	"logwatch/internal/shared/metrics"
	"logwatch/internal/shared/ulid"
	"logwatch/internal/stores"
)

// ErrCycleInProgress is returned when a cycle is requested while a previous
// cycle for the same source is still running. Overlapping cycles would race
// on the cursor, so the late invocation is skipped, never queued.
var ErrCycleInProgress = errors.New("ingestion cycle already in progress")

// CycleResult reports what one ingestion cycle did.
// LinesRead == Stored + ParseFailures + Dropped always holds.
type CycleResult struct {
	LinesRead     int
	Stored        int
	ParseFailures int
	Dropped       int
	CursorOffset  int64
	Duration      time.Duration
}

// Stats is a point-in-time snapshot of the operational signals the pipeline
// exposes: totals since start plus the last committed cursor position.
type Stats struct {
	ParseFailureTotal   int64
	DroppedTotal        int64
	LastCursorOffset    int64
	LastCursorUpdatedAt time.Time
	LastCycleDuration   time.Duration
}

// LogFileIngestor tails one access-log file on a periodic cadence, parsing
// each new line and appending every successfully parsed record to the store
// exactly once. Parse failures are counted and skipped; one bad line never
// blocks the lines after it.
//
//go:generate mockgen -source=log_file_ingestor.go -destination=./mocks/log_file_ingestor_mock.go -package=mocks
type LogFileIngestor interface {
	// Start runs periodic cycles until the context is cancelled or Stop is
	// called. An immediate first cycle runs before the first tick.
	Start(ctx context.Context)
	Stop()
	// RunCycle performs one bounded ingestion pass over the source.
	RunCycle(ctx context.Context) (*CycleResult, error)
	Stats() Stats
}

type IngestorOptions struct {
	SourcePath       string
	Interval         time.Duration
	CycleBudget      time.Duration
	AppendMaxRetries int
	AppendBackoff    time.Duration
}

type logFileIngestor struct {
	opts        IngestorOptions
	parser      parsers.AccessLineParser
	store       stores.AccessLogStore
	cursorStore CursorStore
	logger      loggers.Logger

	// cycleMu is the per-source execution lock: held for a cycle's whole
	// duration so cycles never overlap.
	cycleMu sync.Mutex

	statsMu sync.Mutex
	stats   Stats

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}
}

func NewLogFileIngestor(opts IngestorOptions, parser parsers.AccessLineParser, store stores.AccessLogStore, cursorStore CursorStore, logger loggers.Logger) LogFileIngestor {
	return &logFileIngestor{
		opts:        opts,
		parser:      parser,
		store:       store,
		cursorStore: cursorStore,
		logger:      logger,
		stopCh:      make(chan struct{}),
	}
}

func (ing *logFileIngestor) Start(ctx context.Context) {
	ing.wg.Add(1)
	go func() {
		defer ing.wg.Done()

		ing.runOnce(ctx)

		ticker := time.NewTicker(ing.opts.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ing.stopCh:
				return
			case <-ticker.C:
				ing.runOnce(ctx)
			}
		}
	}()
}

func (ing *logFileIngestor) Stop() {
	ing.stopOnce.Do(func() { close(ing.stopCh) })
	ing.wg.Wait()
}

func (ing *logFileIngestor) runOnce(ctx context.Context) {
	result, err := ing.RunCycle(ctx)
	if err != nil {
		if !errors.Is(err, ErrCycleInProgress) {
			ing.logger.Error().Err(err).
				Str(loggers.FieldSource, ing.opts.SourcePath).
				Msg("ingestion cycle failed")
		}
		return
	}
	ing.logger.Debug().
		Str(loggers.FieldSource, ing.opts.SourcePath).
		Int(loggers.FieldLineCount, result.LinesRead).
		Int64(loggers.FieldCursorOffset, result.CursorOffset).
		Dur(loggers.FieldDuration, result.Duration).
		Msg("ingestion cycle complete")
}

func (ing *logFileIngestor) RunCycle(ctx context.Context) (*CycleResult, error) {
	if !ing.cycleMu.TryLock() {
		metricCyclesTotal.WithLabelValues(valueCycleSkipped).Inc()
		return nil, ErrCycleInProgress
	}
	defer ing.cycleMu.Unlock()

	start := time.Now()
	if ing.opts.CycleBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ing.opts.CycleBudget)
		defer cancel()
	}

	result, err := ing.ingest(ctx)
	if err != nil {
		metricCyclesTotal.WithLabelValues(valueCycleFailed).Inc()
		return nil, err
	}

	result.Duration = time.Since(start)
	metricCyclesTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricCycleDuration.WithLabelValues(ing.opts.SourcePath).Observe(result.Duration.Seconds())
	metricCursorOffset.WithLabelValues(ing.opts.SourcePath).Set(float64(result.CursorOffset))

	ing.statsMu.Lock()
	ing.stats.ParseFailureTotal += int64(result.ParseFailures)
	ing.stats.DroppedTotal += int64(result.Dropped)
	ing.stats.LastCursorOffset = result.CursorOffset
	ing.stats.LastCursorUpdatedAt = time.Now().UTC()
	ing.stats.LastCycleDuration = result.Duration
	ing.statsMu.Unlock()

	return result, nil
}

func (ing *logFileIngestor) Stats() Stats {
	ing.statsMu.Lock()
	defer ing.statsMu.Unlock()
	return ing.stats
}

func (ing *logFileIngestor) ingest(ctx context.Context) (*CycleResult, error) {
	cursor, err := ing.cursorStore.Load(ctx, ing.opts.SourcePath)
	if err != nil {
		return nil, err
	}

	result := &CycleResult{CursorOffset: cursor.Offset}

	file, err := os.Open(ing.opts.SourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			// Source not created yet; nothing to do this cycle.
			return result, nil
		}
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	offset := cursor.Offset
	if info.Size() < offset {
		// Source was rotated or truncated; start over from the beginning.
		ing.logger.Warn().
			Str(loggers.FieldSource, ing.opts.SourcePath).
			Int64(loggers.FieldCursorOffset, offset).
			Msg("source shrank below cursor, resetting to start")
		offset = 0
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}

	committed := offset
	reader := bufio.NewReader(file)

	for {
		if ctx.Err() != nil {
			// Budget exhausted: stop cleanly with the cursor at the last
			// committed line.
			break
		}

		lineBytes, err := reader.ReadBytes('\n')
		if err == io.EOF {
			// A trailing chunk without a newline is a line still being
			// written; leave it for the next cycle.
			break
		}
		if err != nil {
			return nil, err
		}

		line := strings.TrimRight(string(lineBytes), "\r\n")
		if strings.TrimSpace(line) != "" {
			if err := ing.ingestLine(ctx, line, result); err != nil {
				// Budget fired while the append was in flight. The line was
				// never stored, so the cursor must not advance past it; the
				// next cycle re-reads it from the same offset.
				break
			}
		}
		committed += int64(len(lineBytes))
	}

	result.CursorOffset = committed
	if committed != cursor.Offset {
		if err := ing.cursorStore.Save(ctx, ing.opts.SourcePath, Cursor{
			Offset:       committed,
			UpdatedAtUTC: time.Now().UTC(),
		}); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ingestLine classifies one line as stored, parse failure, or dropped. A
// non-nil return means the cycle ended while the append was still in flight;
// the line stays unclassified and is retried by the next cycle.
func (ing *logFileIngestor) ingestLine(ctx context.Context, line string, result *CycleResult) error {
	record, err := ing.parser.Parse(line)
	if err != nil {
		// Malformed lines are expected with heterogeneous upstream formats:
		// count, log at debug, move on.
		result.LinesRead++
		result.ParseFailures++
		metricLinesTotal.WithLabelValues(valueLineParseFailure).Inc()
		ing.logger.Debug().Err(err).Msg("skipping malformed line")
		return nil
	}
	record.RecordID = ulid.NewULID()

	if err := ing.appendWithRetry(ctx, record); err != nil {
		if ctx.Err() != nil {
			// Not a storage verdict: the budget ran out before storage had a
			// chance to accept the record.
			return err
		}
		// Permanently dropped after retries, distinct from a parse failure.
		result.LinesRead++
		result.Dropped++
		metricLinesTotal.WithLabelValues(valueLineDropped).Inc()
		ing.logger.Error().Err(err).
			Str(loggers.FieldSource, ing.opts.SourcePath).
			Msg("record dropped after append retries")
		return nil
	}

	result.LinesRead++
	result.Stored++
	metricLinesTotal.WithLabelValues(valueLineStored).Inc()
	return nil
}

// appendWithRetry retries transient storage failures with backoff. Retries
// are safe: the record carries a unique identity and the cursor only advances
// once the line is fully handled.
func (ing *logFileIngestor) appendWithRetry(ctx context.Context, record *models.AccessLogRecord) error {
	var lastErr error
	for attempt := 0; attempt <= ing.opts.AppendMaxRetries; attempt++ {
		if attempt > 0 && ing.opts.AppendBackoff > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(ing.opts.AppendBackoff * time.Duration(attempt)):
			}
		}
		if lastErr = ing.store.Append(ctx, record); lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return lastErr
		}
	}
	return lastErr
}
