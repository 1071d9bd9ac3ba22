package domain

import "errors"

var (
	// Transaction errors
	ErrNegativeAmount          = errors.New("transaction amount must not be negative")
	ErrUnknownKind             = errors.New("unknown transaction kind")
	ErrMissingExpenseDetail    = errors.New("expense transactions require expense detail")
	ErrUnexpectedExpenseDetail = errors.New("only expense transactions carry expense detail")
	ErrTransactionNotFound     = errors.New("transaction not found")

	// Category and budget errors
	ErrUnknownCategory = errors.New("unknown budget category")
	ErrInvalidFraction = errors.New("allocation fraction must be between 0 and 1")

	// Debt errors
	ErrEmptyDebtName      = errors.New("debt name must not be empty")
	ErrInvalidPrincipal   = errors.New("debt principal must be positive")
	ErrNegativeRate       = errors.New("debt annual rate must not be negative")
	ErrNegativeTerm       = errors.New("debt term must not be negative")
	ErrNegativeMinPayment = errors.New("debt minimum payment must not be negative")
	ErrDebtNotFound       = errors.New("debt not found")
)
