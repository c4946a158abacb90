package errors

import (
	"net/http"
	"reflect"

	"github.com/sirupsen/logrus"
)

// Upstream error names surfaced by the Aegis admin API.
const (
	ErrNameMemberNotFound       = "MEMBER_NOT_FOUND"
	ErrNamePointAccountNotFound = "POINT_ACCOUNT_NOT_FOUND"
	ErrNameAmountNotPositive    = "POINT_ACTION_AMOUNT_NOT_POSITIVE"
	ErrNameBadRequest           = "BAD_REQUEST"
)

// AppError carries the HTTP status of a failed operation plus, when the
// upstream returned a structured error body, its machine-readable name.
// A StatusCode of 0 means the request never produced an HTTP response
// (network unreachable, unparsable body).
type AppError struct {
	StatusCode int
	ErrorName  string
	Message    string
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return UserMessage(e.ErrorName)
}

func NewAppError(statusCode int, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewUpstreamError wraps a non-2xx upstream response. errorName may be empty
// when the body was not JSON.
func NewUpstreamError(statusCode int, errorName string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		ErrorName:  errorName,
	}
}

// NewTransportError wraps a request that never reached the upstream.
func NewTransportError(originalError error) *AppError {
	logrus.Errorf("[%s] %s", reflect.TypeOf(originalError).String(), originalError)
	return &AppError{
		StatusCode: 0,
		Message:    UserMessage(""),
	}
}

func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

func NewUnauthorizedError(message ...string) *AppError {
	if len(message) > 0 {
		return NewAppError(http.StatusUnauthorized, message[0])
	}
	return NewAppError(http.StatusUnauthorized, "Unauthorized")
}

func NewForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, message)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message)
}

func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message)
}

func NewTooManyRequestsError(message string) *AppError {
	return NewAppError(http.StatusTooManyRequests, message)
}

func NewInternalServerError(originalError error, message string) *AppError {
	logrus.Errorf("[%s] %s", reflect.TypeOf(originalError).String(), originalError)
	return NewAppError(http.StatusInternalServerError, message)
}

// UserMessage maps an upstream error name to the operator-facing message.
// Unknown names fall through to the generic failure message; the fallback is
// always a visible message, never a silent drop.
func UserMessage(errorName string) string {
	switch errorName {
	case ErrNameMemberNotFound:
		return "회원을 찾을 수 없습니다."
	case ErrNamePointAccountNotFound:
		return "포인트 계정을 찾을 수 없습니다."
	case ErrNameAmountNotPositive:
		return "포인트 금액은 0보다 커야 합니다."
	case ErrNameBadRequest:
		return "요청 값이 올바르지 않습니다."
	default:
		return "요청 처리에 실패했습니다."
	}
}
