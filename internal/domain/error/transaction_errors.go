package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when the transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNegativeAmount is returned when a transaction amount is negative.
	// Direction is carried by the transaction type, never by the sign.
	ErrNegativeAmount = errors.New("amount must be non-negative")

	// ErrInvalidTransactionType is returned for an unknown transaction type.
	ErrInvalidTransactionType = errors.New("transaction type must be: income, expense_debit, or expense_credit")

	// ErrCardRequired is returned when a credit expense has no card reference.
	ErrCardRequired = errors.New("expense_credit transactions require a card")

	// ErrCardNotFound is returned when the referenced card does not exist in the wallet.
	ErrCardNotFound = errors.New("credit card not found in wallet")

	// ErrInvalidDate is returned when a transaction date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeAmount         TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010002"
	ErrCodeCardRequired           TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidDate            TransactionErrorCode = "TXN-010004"

	// Not found errors (04XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-040001"
	ErrCodeCardNotFound        TransactionErrorCode = "TXN-040002"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternalError TransactionErrorCode = "TXN-990001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
