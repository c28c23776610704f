package error

import "errors"

// Auth errors. Token issuance belongs to the external identity provider;
// only verification failures are surfaced here.
var (
	// ErrMissingToken is returned when no bearer token is present.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrInvalidToken is returned when the token fails verification.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrRateLimited is returned when a client exceeds the request budget.
	ErrRateLimited = errors.New("too many requests")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUT-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUT-010002"
	ErrCodeRateLimited  AuthErrorCode = "AUT-030001"
)
