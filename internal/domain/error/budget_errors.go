package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when no budget exists for the category.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetCategoryRequired is returned when a budget category is empty.
	ErrBudgetCategoryRequired = errors.New("budget category is required")

	// ErrReservedCategory is returned when budgeting a reserved category.
	ErrReservedCategory = errors.New("category is reserved and cannot be budgeted")

	// ErrInvalidBudgetType is returned for an unknown budget type.
	ErrInvalidBudgetType = errors.New("budget type must be: recurrent or variable")

	// ErrDerivedTotal is returned when directly editing the total of a
	// recurrent category that has subcategory budgets; the total is derived.
	ErrDerivedTotal = errors.New("total is derived from subcategory budgets and cannot be set directly")

	// ErrNotRecurrent is returned when recording a recurrent payment against
	// a variable category.
	ErrNotRecurrent = errors.New("category is not recurrent")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetCategoryRequired BudgetErrorCode = "BDG-010001"
	ErrCodeReservedCategory       BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetType      BudgetErrorCode = "BDG-010003"

	// Business rule errors (02XXXX)
	ErrCodeDerivedTotal BudgetErrorCode = "BDG-020001"
	ErrCodeNotRecurrent BudgetErrorCode = "BDG-020002"

	// Not found errors (04XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BDG-040001"

	// Internal errors (99XXXX)
	ErrCodeBudgetInternalError BudgetErrorCode = "BDG-990001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
