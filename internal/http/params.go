package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"logwatch/internal/models"
)

const (
	paramFrom          = "from"
	paramTo            = "to"
	paramStatus        = "status"
	paramURIContains   = "uri_contains"
	paramClientAddress = "client_address"
	paramLimit         = "limit"
	paramOffset        = "offset"
	paramCursor        = "cursor"
	paramSort          = "sort"
	paramOrder         = "order"
)

// parseTimeRange decodes the from/to query parameters. A missing bound yields
// a nil range; whether that is acceptable is the service's decision, not the
// transport's.
func parseTimeRange(r *http.Request) (*models.TimeRange, error) {
	fromParam := strings.TrimSpace(r.URL.Query().Get(paramFrom))
	toParam := strings.TrimSpace(r.URL.Query().Get(paramTo))
	if fromParam == "" && toParam == "" {
		return nil, nil
	}

	timeRange := &models.TimeRange{}
	if fromParam != "" {
		from, err := time.Parse(time.RFC3339, fromParam)
		if err != nil {
			return nil, err
		}
		timeRange.From = from.UTC()
	}
	if toParam != "" {
		to, err := time.Parse(time.RFC3339, toParam)
		if err != nil {
			return nil, err
		}
		timeRange.To = to.UTC()
	}
	return timeRange, nil
}

func parseFilterCriteria(r *http.Request) (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{
		URIContains:   strings.TrimSpace(r.URL.Query().Get(paramURIContains)),
		ClientAddress: strings.TrimSpace(r.URL.Query().Get(paramClientAddress)),
	}

	timeRange, err := parseTimeRange(r)
	if err != nil {
		return criteria, errInvalidTimeParam(err)
	}
	criteria.TimeRange = timeRange

	status, err := models.ParseStatusPredicate(r.URL.Query().Get(paramStatus))
	if err != nil {
		return criteria, errInvalidStatusParam(err)
	}
	criteria.Status = status

	if criteria.Limit, err = parseNonNegativeInt(r, paramLimit); err != nil {
		return criteria, errInvalidPageParam(err)
	}
	if criteria.Offset, err = parseNonNegativeInt(r, paramOffset); err != nil {
		return criteria, errInvalidPageParam(err)
	}

	switch strings.TrimSpace(r.URL.Query().Get(paramSort)) {
	case "", string(models.SortByTimestamp):
		criteria.SortBy = models.SortByTimestamp
	case string(models.SortByStatusCode):
		criteria.SortBy = models.SortByStatusCode
	default:
		return criteria, errInvalidSortParam()
	}

	switch strings.TrimSpace(r.URL.Query().Get(paramOrder)) {
	case "", "asc":
		criteria.SortDesc = false
	case "desc":
		criteria.SortDesc = true
	default:
		return criteria, errInvalidSortParam()
	}

	return criteria, nil
}

func parseNonNegativeInt(r *http.Request, param string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(param))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		return 0, err
	}
	return value, nil
}
