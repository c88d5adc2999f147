package http

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"logwatch/internal/queries"
)

var exportHeader = []string{
	"recordId", "timestampUtc", "clientAddress", "httpMethod",
	"requestUri", "statusCode", "responseTimeMs", "userAgent",
}

type exportLogsHandler struct {
	queryService queries.QueryService
}

func NewExportLogsHandler(queryService queries.QueryService) AppHttpHandler {
	return &exportLogsHandler{
		queryService: queryService,
	}
}

// Handle processes GET /logs/export requests, streaming the filtered records
// as CSV in timestamp order.
func (h *exportLogsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	criteria, err := parseFilterCriteria(r)
	if err != nil {
		return err
	}

	records, svcErr := h.queryService.ExportAccessLogs(r.Context(), criteria)
	if svcErr != nil {
		return svcErr
	}

	w.Header().Set(headerContentType, contentTypeCSV)
	w.Header().Set("Content-Disposition", `attachment; filename="access-logs.csv"`)
	w.WriteHeader(http.StatusOK)

	// The status line is already written: a write failure past this point can
	// only be logged, not turned into an error response.
	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return nil
	}
	for _, record := range records {
		row := []string{
			record.RecordID,
			record.TimestampUTC.UTC().Format(time.RFC3339),
			record.ClientAddress,
			record.HttpMethod,
			record.RequestURI,
			strconv.Itoa(record.StatusCode),
			strconv.FormatInt(record.ResponseTime.Milliseconds(), 10),
			record.UserAgent,
		}
		if err := writer.Write(row); err != nil {
			return nil
		}
	}
	writer.Flush()
	return nil
}
