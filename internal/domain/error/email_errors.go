package error

import "errors"

// Email delivery errors.
var (
	// ErrEmailPermanentFailure marks a delivery failure that must not be retried.
	ErrEmailPermanentFailure = errors.New("permanent email delivery failure")

	// ErrEmailSendFailed marks a transient delivery failure.
	ErrEmailSendFailed = errors.New("failed to send email")

	// ErrEmailJobNotFound indicates the queued email job does not exist.
	ErrEmailJobNotFound = errors.New("email job not found")

	// ErrInvalidTemplate indicates an unknown email template type.
	ErrInvalidTemplate = errors.New("unknown email template")
)

// EmailErrorCode defines error codes for email errors.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTemplate EmailErrorCode = "EML-010001"

	// Delivery errors (03XXXX)
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-030001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-030002"

	// Not found errors (04XXXX)
	ErrCodeEmailJobNotFound EmailErrorCode = "EML-040001"

	// Internal errors (99XXXX)
	ErrCodeEmailQueueFailed EmailErrorCode = "EML-990001"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
