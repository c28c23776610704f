// Package error defines domain-specific errors for the Wallet Tracker application.
package error

import "errors"

// Wallet domain errors.
var (
	// ErrWalletNotFound is returned when the wallet does not exist or is not
	// owned by the requesting user.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrLastWallet is returned when deleting the only remaining wallet.
	ErrLastWallet = errors.New("cannot delete the last remaining wallet")

	// ErrWalletNameRequired is returned when a wallet name is empty.
	ErrWalletNameRequired = errors.New("wallet name is required")
)

// WalletErrorCode defines error codes for wallet errors.
// Format: WLT-XXYYYY where XX is category and YYYY is specific error.
type WalletErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeWalletNameRequired WalletErrorCode = "WLT-010001"

	// Business rule errors (02XXXX)
	ErrCodeLastWallet WalletErrorCode = "WLT-020001"

	// Not found errors (04XXXX)
	ErrCodeWalletNotFound WalletErrorCode = "WLT-040001"

	// Internal errors (99XXXX)
	ErrCodeWalletInternalError WalletErrorCode = "WLT-990001"
)

// WalletError represents a wallet error with code and message.
type WalletError struct {
	Code    WalletErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WalletError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WalletError) Unwrap() error {
	return e.Err
}

// NewWalletError creates a new WalletError with the given code and message.
func NewWalletError(code WalletErrorCode, message string, err error) *WalletError {
	return &WalletError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
