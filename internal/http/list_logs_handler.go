package http

import (
	"net/http"

	"logwatch/internal/models"
	"logwatch/internal/queries"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// AccessLogPageResponse is the JSON body for GET /logs.
type AccessLogPageResponse struct {
	RequestID  string                    `json:"requestId"`
	Records    []*models.AccessLogRecord `json:"records"`
	TotalCount int64                     `json:"totalCount"`
	NextCursor string                    `json:"nextCursor,omitempty"`
}

type listLogsHandler struct {
	queryService queries.QueryService
}

func NewListLogsHandler(queryService queries.QueryService) AppHttpHandler {
	return &listLogsHandler{
		queryService: queryService,
	}
}

// Handle processes GET /logs requests.
func (h *listLogsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	criteria, err := parseFilterCriteria(r)
	if err != nil {
		return err
	}

	page, svcErr := h.queryService.ListAccessLogs(r.Context(), criteria, r.URL.Query().Get(paramCursor))
	if svcErr != nil {
		return svcErr
	}

	return writeJSONResponse(w, http.StatusOK, AccessLogPageResponse{
		RequestID:  requestID(r),
		Records:    page.Records,
		TotalCount: page.TotalCount,
		NextCursor: page.NextCursor,
	})
}
