package http

import (
	"net/http"

	"logwatch/internal/models"
	"logwatch/internal/queries"
)

// UptimeListResponse is the JSON body for GET /uptime.
type UptimeListResponse struct {
	RequestID string                `json:"requestId"`
	Probes    []*models.UptimeProbe `json:"probes"`
}

// UptimeSummaryResponse is the JSON body for GET /uptime/summary.
type UptimeSummaryResponse struct {
	RequestID         string                    `json:"requestId"`
	ProbeCount        int                       `json:"probeCount"`
	UptimePercentage  float64                   `json:"uptimePercentage"`
	DowntimeIntervals []models.DowntimeInterval `json:"downtimeIntervals"`
}

type listUptimeHandler struct {
	queryService queries.QueryService
}

func NewListUptimeHandler(queryService queries.QueryService) AppHttpHandler {
	return &listUptimeHandler{
		queryService: queryService,
	}
}

// Handle processes GET /uptime requests.
func (h *listUptimeHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	timeRange, err := parseTimeRange(r)
	if err != nil {
		return errInvalidTimeParam(err)
	}
	if timeRange == nil {
		timeRange = &models.TimeRange{}
	}

	probes, svcErr := h.queryService.ListUptime(r.Context(), *timeRange)
	if svcErr != nil {
		return svcErr
	}

	return writeJSONResponse(w, http.StatusOK, UptimeListResponse{
		RequestID: requestID(r),
		Probes:    probes,
	})
}

type uptimeSummaryHandler struct {
	queryService queries.QueryService
}

func NewUptimeSummaryHandler(queryService queries.QueryService) AppHttpHandler {
	return &uptimeSummaryHandler{
		queryService: queryService,
	}
}

// Handle processes GET /uptime/summary requests.
func (h *uptimeSummaryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	timeRange, err := parseTimeRange(r)
	if err != nil {
		return errInvalidTimeParam(err)
	}
	if timeRange == nil {
		timeRange = &models.TimeRange{}
	}

	result, svcErr := h.queryService.GetUptimeSummary(r.Context(), *timeRange)
	if svcErr != nil {
		return svcErr
	}

	return writeJSONResponse(w, http.StatusOK, UptimeSummaryResponse{
		RequestID:         requestID(r),
		ProbeCount:        len(result.Probes),
		UptimePercentage:  result.UptimePercentage,
		DowntimeIntervals: result.DowntimeIntervals,
	})
}
