package http

import (
	"net/http"
	"time"

	"logwatch/internal/ingestors"
)

// HealthResponse is the JSON body for GET /healthz. The ingestion block
// surfaces the pipeline's operational counters so a scrape of /healthz is
// enough to spot a stuck or failing tail.
type HealthResponse struct {
	Status    string          `json:"status"`
	Ingestion IngestionHealth `json:"ingestion"`
}

type IngestionHealth struct {
	ParseFailureTotal   int64     `json:"parseFailureTotal"`
	DroppedTotal        int64     `json:"droppedTotal"`
	CursorOffset        int64     `json:"cursorOffset"`
	CursorUpdatedAtUTC  time.Time `json:"cursorUpdatedAtUtc"`
	LastCycleDurationMs int64     `json:"lastCycleDurationMs"`
}

type healthHandler struct {
	ingestor ingestors.LogFileIngestor
}

func NewHealthHandler(ingestor ingestors.LogFileIngestor) AppHttpHandler {
	return &healthHandler{
		ingestor: ingestor,
	}
}

// Handle processes GET /healthz requests.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	stats := h.ingestor.Stats()
	return writeJSONResponse(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Ingestion: IngestionHealth{
			ParseFailureTotal:   stats.ParseFailureTotal,
			DroppedTotal:        stats.DroppedTotal,
			CursorOffset:        stats.LastCursorOffset,
			CursorUpdatedAtUTC:  stats.LastCursorUpdatedAt,
			LastCycleDurationMs: stats.LastCycleDuration.Milliseconds(),
		},
	})
}
