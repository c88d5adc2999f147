package http

import (
	"logwatch/internal/shared/svcerrors"
)

// Request decoding errors
const (
	codeInvalidTimeParam   = "API_1000"
	codeInvalidStatusParam = "API_1001"
	codeInvalidPageParam   = "API_1002"
	codeInvalidSortParam   = "API_1003"
)

func errInvalidTimeParam(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTimeParam, "from/to must be RFC 3339 timestamps", cause)
}

func errInvalidStatusParam(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidStatusParam, "status must be a code like 500 or a class like 5xx", cause)
}

func errInvalidPageParam(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidPageParam, "limit and offset must be non-negative integers", cause)
}

func errInvalidSortParam() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidSortParam, "sort must be timestamp or status_code, order must be asc or desc", nil)
}
