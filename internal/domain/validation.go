package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidReference   = errors.New("invalid modification reference")
	ErrInvalidDescription = errors.New("invalid description")
	ErrAmountTooLarge     = errors.New("amount exceeds maximum allowed")
	ErrAmountTooSmall     = errors.New("amount below minimum allowed")
	ErrInvalidFiscalYear  = errors.New("invalid fiscal year")
)

// Validation constants
const (
	MaxReferenceLength   = 64
	MaxDescriptionLength = 1024
	MaxModificationValue = "1000000000" // 1 billion, per-modification cap
	MinModificationValue = "0.01"
	MinFiscalYear        = 1990
	MaxFiscalYear        = 2100
)

// ValidateReference validates the human-facing modification code.
func ValidateReference(reference string) error {
	reference = strings.TrimSpace(reference)

	if reference == "" {
		return fmt.Errorf("%w: reference cannot be empty", ErrInvalidReference)
	}

	if len(reference) > MaxReferenceLength {
		return fmt.Errorf("%w: reference exceeds %d characters", ErrInvalidReference, MaxReferenceLength)
	}

	return nil
}

// ValidateDescription validates free-text fields.
func ValidateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidDescription, MaxDescriptionLength)
	}

	return nil
}

// ValidateAmount validates a modification amount against the global bounds.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	minAmount, _ := decimal.NewFromString(MinModificationValue)
	if amount.LessThan(minAmount) {
		return fmt.Errorf("%w: minimum amount is %s", ErrAmountTooSmall, MinModificationValue)
	}

	maxAmount, _ := decimal.NewFromString(MaxModificationValue)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxModificationValue)
	}

	return nil
}

// ValidateFiscalYear validates a budget's fiscal year.
func ValidateFiscalYear(year int) error {
	if year < MinFiscalYear || year > MaxFiscalYear {
		return fmt.Errorf("%w: %d", ErrInvalidFiscalYear, year)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
