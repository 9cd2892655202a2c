package dto

import "net/http"

// Error codes shared by the API surface. Domain errors carry the same
// codes, so the mapping below is the single source of truth for status
// codes.
const (
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeInternal   = "INTERNAL"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	"NOT_FOUND": http.StatusNotFound,

	// Concurrency and uniqueness conflicts
	"CODE_DUPLICATE":   http.StatusConflict,
	"VERSION_CONFLICT": http.StatusConflict,

	// Business rule violations
	"INVALID_CODE":           http.StatusUnprocessableEntity,
	"INVALID_NAME":           http.StatusUnprocessableEntity,
	"INVALID_EMAIL_FORMAT":   http.StatusUnprocessableEntity,
	"INVALID_DATE_RANGE":     http.StatusUnprocessableEntity,
	"INVALID_RATE":           http.StatusUnprocessableEntity,
	"INVALID_ACCOUNT_NUMBER": http.StatusUnprocessableEntity,
	"INVALID_ACCOUNT_TYPE":   http.StatusUnprocessableEntity,
	"INVALID_CURRENCY":       http.StatusUnprocessableEntity,
	"INVALID_PAYEE":          http.StatusUnprocessableEntity,
	"ALREADY_ACTIVE":         http.StatusUnprocessableEntity,
	"ALREADY_INACTIVE":       http.StatusUnprocessableEntity,

	"UNAUTHORIZED": http.StatusUnauthorized,

	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeInternal:   http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
