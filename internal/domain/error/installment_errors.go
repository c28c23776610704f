package error

import "errors"

// Installment domain errors.
var (
	// ErrInstallmentNotFound is returned when the installment does not exist.
	ErrInstallmentNotFound = errors.New("installment not found")

	// ErrPaymentLocked is returned when un-toggling a payment that was made
	// through a tracked transaction. Such payments can only be reversed by
	// deleting the transaction.
	ErrPaymentLocked = errors.New("payment is linked to a transaction and cannot be toggled manually")

	// ErrAllInstallmentsPaid is returned when paying would exceed the total count.
	ErrAllInstallmentsPaid = errors.New("all installments are already paid")

	// ErrNoPaidInstallments is returned when un-paying would go below zero.
	ErrNoPaidInstallments = errors.New("no paid installments to reverse")

	// ErrInvalidInstallmentCount is returned when the total count is not positive.
	ErrInvalidInstallmentCount = errors.New("total installments must be greater than zero")

	// ErrInstallmentCardRequired is returned when a credit_card installment has no card.
	ErrInstallmentCardRequired = errors.New("credit_card installments require a card")
)

// InstallmentErrorCode defines error codes for installment errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InstallmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidInstallmentCount InstallmentErrorCode = "INS-010001"
	ErrCodeInstallmentCardRequired InstallmentErrorCode = "INS-010002"

	// Business rule errors (02XXXX)
	ErrCodePaymentLocked       InstallmentErrorCode = "INS-020001"
	ErrCodeAllInstallmentsPaid InstallmentErrorCode = "INS-020002"
	ErrCodeNoPaidInstallments  InstallmentErrorCode = "INS-020003"

	// Not found errors (04XXXX)
	ErrCodeInstallmentNotFound InstallmentErrorCode = "INS-040001"

	// Internal errors (99XXXX)
	ErrCodeInstallmentInternalError InstallmentErrorCode = "INS-990001"
)

// InstallmentError represents an installment error with code and message.
type InstallmentError struct {
	Code    InstallmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InstallmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InstallmentError) Unwrap() error {
	return e.Err
}

// NewInstallmentError creates a new InstallmentError with the given code and message.
func NewInstallmentError(code InstallmentErrorCode, message string, err error) *InstallmentError {
	return &InstallmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
