package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"logwatch/internal/aggregators"
	internalhttp "logwatch/internal/http"
	"logwatch/internal/ingestors"
	"logwatch/internal/parsers"
	"logwatch/internal/probes"
	"logwatch/internal/queries"
	"logwatch/internal/shared/configs"
	"logwatch/internal/shared/filestorages"
	"logwatch/internal/shared/loggers"
	"logwatch/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	ingestor ingestors.LogFileIngestor
	prober   probes.HealthCheckProber

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "logwatch").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize stores
	budget := stores.ScanBudget{
		MaxRangeSpan: time.Duration(config.Query.MaxRangeHours) * time.Hour,
		MaxScanRows:  config.Query.MaxScanRows,
	}
	accessLogStore := stores.NewAccessLogStore(fileStorage, budget)
	uptimeProbeStore := stores.NewUptimeProbeStore(fileStorage, budget)

	// Initialize the ingestion pipeline
	parser, err := parsers.NewNginxLineParser(parsers.Format(config.Ingestion.Format))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize parser: %w", err)
	}
	cursorStore := ingestors.NewCursorStore(fileStorage)
	ingestorLogger := appLogger.With().Str(loggers.FieldComponent, "ingestor").Logger()
	ingestor := ingestors.NewLogFileIngestor(ingestors.IngestorOptions{
		SourcePath:       config.Ingestion.SourcePath,
		Interval:         time.Duration(config.Ingestion.IntervalSeconds) * time.Second,
		CycleBudget:      time.Duration(config.Ingestion.CycleBudgetSeconds) * time.Second,
		AppendMaxRetries: config.Ingestion.AppendMaxRetries,
		AppendBackoff:    time.Duration(config.Ingestion.AppendBackoffMs) * time.Millisecond,
	}, parser, accessLogStore, cursorStore, ingestorLogger)

	// Initialize the uptime prober
	targets := make([]probes.Target, 0, len(config.Probes.Targets))
	for _, target := range config.Probes.Targets {
		targets = append(targets, probes.Target{Name: target.Name, URL: target.URL})
	}
	proberLogger := appLogger.With().Str(loggers.FieldComponent, "prober").Logger()
	prober := probes.NewHealthCheckProber(probes.ProberOptions{
		Interval: time.Duration(config.Probes.IntervalSeconds) * time.Second,
		Timeout:  time.Duration(config.Probes.TimeoutSeconds) * time.Second,
		Targets:  targets,
	}, uptimeProbeStore, proberLogger)

	// Initialize the query service
	uptimeSummarizer := aggregators.NewUptimeSummarizer()
	queryService := queries.NewQueryService(accessLogStore, uptimeProbeStore, uptimeSummarizer, config.Query.MaxPageSize)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(queryService, ingestor, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
		ingestor:  ingestor,
		prober:    prober,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting logwatch service on port %d (log_level=%s, file_storage_root_dir=%s, source=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Ingestion.SourcePath)

	// start background workers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.ingestor.Start(app.backgroundCtx)
	if len(app.config.Probes.Targets) > 0 {
		app.prober.Start(app.backgroundCtx)
	}

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel background workers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background workers cancelled")
	}

	// 3) Wait for background workers to finish
	app.ingestor.Stop()
	if len(app.config.Probes.Targets) > 0 {
		app.prober.Stop()
	}
	app.appLogger.Info().Msg("Background workers stopped")

	return nil
}
