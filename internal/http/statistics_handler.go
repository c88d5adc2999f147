package http

import (
	"net/http"

	"logwatch/internal/queries"
)

// StatisticsResponse is the JSON body for GET /statistics.
type StatisticsResponse struct {
	RequestID           string           `json:"requestId"`
	TotalCount          int64            `json:"totalCount"`
	RequestsByStatus    map[int]int64    `json:"requestsByStatus"`
	RequestsByUserAgent map[string]int64 `json:"requestsByUserAgent"`
}

type statisticsHandler struct {
	queryService queries.QueryService
}

func NewStatisticsHandler(queryService queries.QueryService) AppHttpHandler {
	return &statisticsHandler{
		queryService: queryService,
	}
}

// Handle processes GET /statistics requests.
func (h *statisticsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	criteria, err := parseFilterCriteria(r)
	if err != nil {
		return err
	}

	statistics, svcErr := h.queryService.GetStatistics(r.Context(), criteria)
	if svcErr != nil {
		return svcErr
	}

	return writeJSONResponse(w, http.StatusOK, StatisticsResponse{
		RequestID:           requestID(r),
		TotalCount:          statistics.TotalCount,
		RequestsByStatus:    statistics.RequestsByStatus,
		RequestsByUserAgent: statistics.RequestsByUserAgent,
	})
}
