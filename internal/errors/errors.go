package errors

import "fmt"

// Error codes
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeInternal          = "INTERNAL_ERROR"
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeUnsupportedSport  = "UNSUPPORTED_SPORT"
	ErrCodeMalformedSequence = "MALFORMED_SEQUENCE"
	ErrCodeSequenceFetch     = "SEQUENCE_FETCH_FAILED"
	ErrCodeQueueFull         = "QUEUE_FULL"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "UNSUPPORTED_SPORT")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// NewUnsupportedSportError rejects a sport identifier with no registered profile.
// 422 rather than 400: the request is well-formed, the sport is just not offered.
func NewUnsupportedSportError(sport string) *AppError {
	return &AppError{
		Code:    ErrCodeUnsupportedSport,
		Message: fmt.Sprintf("unsupported sport: %q", sport),
		Status:  422,
	}
}

// NewMalformedSequenceError rejects a keypoint sequence that failed structural
// validation before any analysis work started.
func NewMalformedSequenceError(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeMalformedSequence,
		Message: fmt.Sprintf("malformed sequence: %s", reason),
		Status:  400,
	}
}

// NewSequenceFetchError wraps a failure to retrieve a sequence artifact from
// a remote pose source.
func NewSequenceFetchError(url string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeSequenceFetch,
		Message: fmt.Sprintf("failed to fetch sequence from %s", url),
		Status:  502,
		Err:     err,
	}
}

// NewQueueFullError signals that the analysis queue cannot accept more work.
func NewQueueFullError() *AppError {
	return &AppError{
		Code:    ErrCodeQueueFull,
		Message: "analysis queue is full, retry later",
		Status:  503,
	}
}
