package error

import "errors"

// Fixed income domain errors.
var (
	// ErrFixedIncomeNotFound is returned when the fixed income does not exist.
	ErrFixedIncomeNotFound = errors.New("fixed income not found")

	// ErrFixedIncomeNameRequired is returned when a fixed income name is empty.
	ErrFixedIncomeNameRequired = errors.New("fixed income name is required")

	// ErrReceivedAmountRequired is returned when marking a period as received
	// with a zero or negative amount.
	ErrReceivedAmountRequired = errors.New("received amount must be greater than zero")
)

// FixedIncomeErrorCode defines error codes for fixed income errors.
// Format: FIN-XXYYYY where XX is category and YYYY is specific error.
type FixedIncomeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeFixedIncomeNameRequired FixedIncomeErrorCode = "FIN-010001"
	ErrCodeReceivedAmountRequired  FixedIncomeErrorCode = "FIN-010002"

	// Not found errors (04XXXX)
	ErrCodeFixedIncomeNotFound FixedIncomeErrorCode = "FIN-040001"

	// Internal errors (99XXXX)
	ErrCodeFixedIncomeInternalError FixedIncomeErrorCode = "FIN-990001"
)

// FixedIncomeError represents a fixed income error with code and message.
type FixedIncomeError struct {
	Code    FixedIncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FixedIncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FixedIncomeError) Unwrap() error {
	return e.Err
}

// NewFixedIncomeError creates a new FixedIncomeError with the given code and message.
func NewFixedIncomeError(code FixedIncomeErrorCode, message string, err error) *FixedIncomeError {
	return &FixedIncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
