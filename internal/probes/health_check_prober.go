package probes

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"logwatch/internal/models"
	"logwatch/internal/shared/loggers"
	"logwatch/internal/shared/ulid"
	"logwatch/internal/stores"
)

// Target is one HTTP endpoint whose availability is tracked.
type Target struct {
	Name string
	URL  string
}

// HealthCheckProber periodically issues an HTTP GET against each configured
// target and appends one UP or DOWN probe per target per round. A target is UP
// when it answers below 500 within the timeout; connection failures, timeouts
// and 5xx responses are DOWN.
//
//go:generate mockgen -source=health_check_prober.go -destination=./mocks/health_check_prober_mock.go -package=mocks
type HealthCheckProber interface {
	// Start runs periodic rounds until the context is cancelled or Stop is
	// called. An immediate first round runs before the first tick.
	Start(ctx context.Context)
	Stop()
	// RunRound checks every target once and persists the resulting probes.
	RunRound(ctx context.Context) ([]*models.UptimeProbe, error)
}

type ProberOptions struct {
	Interval time.Duration
	Timeout  time.Duration
	Targets  []Target
}

type healthCheckProber struct {
	opts       ProberOptions
	probeStore stores.UptimeProbeStore
	httpClient *http.Client
	logger     loggers.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}
}

func NewHealthCheckProber(opts ProberOptions, probeStore stores.UptimeProbeStore, logger loggers.Logger) HealthCheckProber {
	return &healthCheckProber{
		opts:       opts,
		probeStore: probeStore,
		httpClient: &http.Client{Timeout: opts.Timeout},
		logger:     logger,
		stopCh:     make(chan struct{}),
	}
}

func (p *healthCheckProber) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		p.runOnce(ctx)

		ticker := time.NewTicker(p.opts.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-p.stopCh:
				return
			case <-ticker.C:
				p.runOnce(ctx)
			}
		}
	}()
}

func (p *healthCheckProber) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

func (p *healthCheckProber) runOnce(ctx context.Context) {
	if _, err := p.RunRound(ctx); err != nil {
		p.logger.Error().Err(err).Msg("probe round failed")
	}
}

func (p *healthCheckProber) RunRound(ctx context.Context) ([]*models.UptimeProbe, error) {
	round := make([]*models.UptimeProbe, 0, len(p.opts.Targets))
	for _, target := range p.opts.Targets {
		probe := p.check(ctx, target)
		// A failed append loses one measurement; later probes still run so a
		// storage hiccup never blinds the whole round.
		if err := p.probeStore.Append(ctx, probe); err != nil {
			p.logger.Error().Err(err).
				Str(loggers.FieldProbeTarget, target.Name).
				Msg("failed to persist probe")
			continue
		}
		round = append(round, probe)
	}
	return round, ctx.Err()
}

func (p *healthCheckProber) check(ctx context.Context, target Target) *models.UptimeProbe {
	start := time.Now()
	probe := &models.UptimeProbe{
		ProbeID:      ulid.NewULID(),
		TimestampUTC: start.UTC(),
		Source:       target.Name,
		Status:       models.ProbeUp,
	}

	checkCtx := ctx
	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		checkCtx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, target.URL, nil)
	if err != nil {
		probe.Status = models.ProbeDown
		probe.Details = err.Error()
	} else if resp, err := p.httpClient.Do(req); err != nil {
		probe.Status = models.ProbeDown
		probe.Details = err.Error()
	} else {
		resp.Body.Close()
		if resp.StatusCode >= http.StatusInternalServerError {
			probe.Status = models.ProbeDown
			probe.Details = "unhealthy status " + strconv.Itoa(resp.StatusCode)
		}
	}

	statusLabel := valueStatusUp
	if probe.Status == models.ProbeDown {
		statusLabel = valueStatusDown
	}
	metricChecksTotal.WithLabelValues(target.Name, statusLabel).Inc()
	metricCheckDuration.WithLabelValues(target.Name).Observe(time.Since(start).Seconds())

	return probe
}
