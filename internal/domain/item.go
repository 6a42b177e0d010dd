package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetItem is a line item owned by exactly one budget. AllocatedAmount and
// AvailableAmount move together and only through approved modifications;
// committed/accrued/paid are written by the spending workflows and are never
// touched here.
type BudgetItem struct {
	ID              string
	BudgetID        string
	Code            string
	Name            string
	AllocatedAmount decimal.Decimal
	CommittedAmount decimal.Decimal
	AccruedAmount   decimal.Decimal
	PaidAmount      decimal.Decimal
	AvailableAmount decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidateDecrease checks that amount can be drawn from the item without
// driving its available balance negative.
func (i *BudgetItem) ValidateDecrease(amount decimal.Decimal) error {
	if i.AvailableAmount.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyIncrease returns allocated and available after funds enter the item.
func (i *BudgetItem) ApplyIncrease(amount decimal.Decimal) (allocated, available decimal.Decimal) {
	return i.AllocatedAmount.Add(amount), i.AvailableAmount.Add(amount)
}

// ApplyDecrease returns allocated and available after funds leave the item.
func (i *BudgetItem) ApplyDecrease(amount decimal.Decimal) (allocated, available decimal.Decimal) {
	return i.AllocatedAmount.Sub(amount), i.AvailableAmount.Sub(amount)
}
