package queries

import (
	"fmt"

	"logwatch/internal/shared/svcerrors"
)

// QueryService errors
const (
	codeTimeRangeRequired = "QRY_1000"
	codeInvalidTimeRange  = "QRY_1001"
	codeInvalidPagination = "QRY_1002"
	codeInvalidCursor     = "QRY_1003"
	codeScopeTooLarge     = "QRY_1004"

	codeInternalStoreFailed = "QRY_9000"
)

// errTimeRangeRequired is the explicit rejection for unbounded queries: an
// empty result could be misread as "no matching logs", so the missing bound
// is surfaced as a failure instead.
func errTimeRangeRequired() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeTimeRangeRequired, "time range is required", nil)
}

func errInvalidTimeRange(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTimeRange, msg, nil)
}

func errInvalidPagination(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidPagination, msg, nil)
}

func errInvalidCursor(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidCursor, "invalid page cursor", cause)
}

func errScopeTooLarge(cause error) *svcerrors.ServiceError {
	return svcerrors.NewScopeTooLargeError(codeScopeTooLarge, "query exceeds the configured scan budget", cause)
}

func errInternalStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStoreFailed, fmt.Errorf("storeQueryFailed: %w", cause))
}
