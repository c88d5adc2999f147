package http

import (
	"net/http"

	"logwatch/internal/ingestors"
	"logwatch/internal/queries"
	"logwatch/internal/shared/loggers"
	"logwatch/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(queryService queries.QueryService, ingestor ingestors.LogFileIngestor, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	listLogsHandler := NewListLogsHandler(queryService)
	exportLogsHandler := NewExportLogsHandler(queryService)
	listUptimeHandler := NewListUptimeHandler(queryService)
	uptimeSummaryHandler := NewUptimeSummaryHandler(queryService)
	statisticsHandler := NewStatisticsHandler(queryService)
	healthHandler := NewHealthHandler(ingestor)

	// Routes
	router.Get("/logs", errorHandlingAdapter(listLogsHandler))
	router.Get("/logs/export", errorHandlingAdapter(exportLogsHandler))
	router.Get("/uptime", errorHandlingAdapter(listUptimeHandler))
	router.Get("/uptime/summary", errorHandlingAdapter(uptimeSummaryHandler))
	router.Get("/statistics", errorHandlingAdapter(statisticsHandler))
	router.Get("/healthz", errorHandlingAdapter(healthHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
