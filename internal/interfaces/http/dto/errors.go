package dto

import (
	"net/http"
	"strings"
)

// Error codes produced by the HTTP layer itself. Domain errors keep the code
// they were created with.
const (
	ErrCodeInternal       = "INTERNAL_ERROR"
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeInvalidJSON    = "INVALID_JSON"
	ErrCodeInvalidID      = "INVALID_ID"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeRateLimited    = "RATE_LIMIT_EXCEEDED"
	ErrCodeRequestTooBig  = "REQUEST_TOO_LARGE"
	ErrCodeMethodNotAllow = "METHOD_NOT_ALLOWED"
)

// ErrorCodeHTTPStatus maps exact error codes to HTTP status codes. Codes not
// listed here fall back to the suffix and prefix rules in GetHTTPStatus.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,
	ErrCodeInvalidID:   http.StatusBadRequest,

	// related objects named in a request body are validation failures
	"CART_NOT_FOUND":     http.StatusBadRequest,
	"CART_EMPTY":         http.StatusBadRequest,
	"PRODUCT_NOT_FOUND":  http.StatusBadRequest,
	"CATEGORY_NOT_FOUND": http.StatusBadRequest,

	// deletion guards
	"CATEGORY_HAS_PRODUCTS": http.StatusMethodNotAllowed,
	"PRODUCT_HAS_ORDERS":    http.StatusMethodNotAllowed,
	ErrCodeMethodNotAllow:   http.StatusMethodNotAllowed,

	"ALREADY_EXISTS":       http.StatusConflict,
	"DUPLICATE_REQUEST":    http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,

	ErrCodeNotFound:    http.StatusNotFound,
	"TARGET_NOT_FOUND": http.StatusNotFound,

	"STORAGE_DISABLED":   http.StatusServiceUnavailable,
	ErrCodeRateLimited:   http.StatusTooManyRequests,
	ErrCodeRequestTooBig: http.StatusRequestEntityTooLarge,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	switch {
	case strings.HasPrefix(code, "TOKEN_"):
		return http.StatusUnauthorized
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "_EXISTS"):
		return http.StatusConflict
	case strings.HasPrefix(code, "INVALID_"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
