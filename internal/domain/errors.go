package domain

import "errors"

var (
	// Lookup errors
	ErrBudgetNotFound       = errors.New("budget not found")
	ErrItemNotFound         = errors.New("budget item not found")
	ErrModificationNotFound = errors.New("modification not found")

	// Modification errors
	ErrBudgetNotActive      = errors.New("budget is not active")
	ErrMissingItemReference = errors.New("transfer requires two distinct budget items")
	ErrInsufficientFunds    = errors.New("insufficient available funds")
	ErrInvalidState         = errors.New("modification is not pending")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrItemBudgetMismatch   = errors.New("budget item belongs to a different budget")
	ErrMissingJustification = errors.New("justification is required")
	ErrInvalidType          = errors.New("unknown modification type")

	// ErrStoreFailure wraps infrastructure-level transaction failures.
	// No partial effect is persisted, so callers may safely retry.
	ErrStoreFailure = errors.New("store failure")
)
