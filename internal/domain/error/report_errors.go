package error

import "errors"

// Report (dashboard aggregation) domain errors.
var (
	// ErrMissingYear is returned when the year selector is not provided.
	ErrMissingYear = errors.New("year is required")

	// ErrInvalidMonth is returned when the month selector is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidPeriodKey is returned when a period key cannot be parsed.
	ErrInvalidPeriodKey = errors.New("invalid period key, expected YYYY-MM")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingYear      ReportErrorCode = "RPT-010001"
	ErrCodeInvalidMonth     ReportErrorCode = "RPT-010002"
	ErrCodeInvalidPeriodKey ReportErrorCode = "RPT-010003"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
