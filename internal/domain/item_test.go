package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBudgetItem_ValidateDecrease(t *testing.T) {
	item := &BudgetItem{
		AllocatedAmount: decimal.NewFromInt(100),
		AvailableAmount: decimal.NewFromInt(70),
	}

	if err := item.ValidateDecrease(decimal.NewFromInt(70)); err != nil {
		t.Errorf("exact available amount should be allowed, got %v", err)
	}

	if err := item.ValidateDecrease(decimal.RequireFromString("70.01")); err != ErrInsufficientFunds {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}
}

func TestBudgetItem_ApplyIncreaseDecrease(t *testing.T) {
	item := &BudgetItem{
		AllocatedAmount: decimal.NewFromInt(100),
		AvailableAmount: decimal.NewFromInt(70),
	}

	allocated, available := item.ApplyIncrease(decimal.NewFromInt(30))
	if !allocated.Equal(decimal.NewFromInt(130)) || !available.Equal(decimal.NewFromInt(100)) {
		t.Errorf("increase: got allocated=%s available=%s", allocated, available)
	}

	allocated, available = item.ApplyDecrease(decimal.NewFromInt(30))
	if !allocated.Equal(decimal.NewFromInt(70)) || !available.Equal(decimal.NewFromInt(40)) {
		t.Errorf("decrease: got allocated=%s available=%s", allocated, available)
	}

	// Apply helpers never mutate the item itself.
	if !item.AllocatedAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("item mutated by Apply helper")
	}
}
