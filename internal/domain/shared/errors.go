package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound        = NewDomainError("NOT_FOUND", "Resource not found")
	ErrCodeDuplicate   = NewDomainError("CODE_DUPLICATE", "Business code already in use within this tenant")
	ErrVersionConflict = NewDomainError("VERSION_CONFLICT", "Record was modified by another process; re-fetch and retry")
	ErrAlreadyActive   = NewDomainError("ALREADY_ACTIVE", "Record is already active")
	ErrAlreadyInactive = NewDomainError("ALREADY_INACTIVE", "Record is already inactive")
	ErrUnauthorized    = NewDomainError("UNAUTHORIZED", "Missing or invalid tenant/user identity")
	ErrInternal        = NewDomainError("INTERNAL", "An unexpected error occurred")
)

// ErrStaleRecord is the repository-level sentinel for a conditional update
// that matched no rows. At that layer "does not exist" and "version
// mismatch" are indistinguishable; the service resolves the ambiguity
// using its prior existence check.
var ErrStaleRecord = NewDomainError("STALE_RECORD", "Conditional update matched no rows")
