package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus is the lifecycle status of a fiscal-year budget.
type BudgetStatus string

const (
	BudgetStatusDraft     BudgetStatus = "DRAFT"
	BudgetStatusSubmitted BudgetStatus = "SUBMITTED"
	BudgetStatusApproved  BudgetStatus = "APPROVED"
	BudgetStatusActive    BudgetStatus = "ACTIVE"
	BudgetStatusClosed    BudgetStatus = "CLOSED"
)

// Budget is the fiscal-year financial envelope. The budgeting workflow that
// creates and activates budgets lives outside this service; the ledger only
// adjusts TotalAmount through approved modifications.
type Budget struct {
	ID              string
	FiscalYear      int
	TotalAmount     decimal.Decimal
	BaseAllocated   decimal.Decimal
	EstimatedIncome decimal.Decimal
	Status          BudgetStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive reports whether modifications may be created against the budget.
func (b *Budget) IsActive() bool {
	return b.Status == BudgetStatusActive
}

// ApplyCredit returns the budget total after new money enters.
func (b *Budget) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return b.TotalAmount.Add(amount)
}

// ApplyReduction returns the budget total after money leaves.
func (b *Budget) ApplyReduction(amount decimal.Decimal) decimal.Decimal {
	return b.TotalAmount.Sub(amount)
}
