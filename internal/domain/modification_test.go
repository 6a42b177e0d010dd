package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func TestBudgetModification_Validate(t *testing.T) {
	tests := []struct {
		name          string
		modType       ModificationType
		amount        decimal.Decimal
		fromItemID    *string
		toItemID      *string
		justification string
		expectError   error
	}{
		{
			name:        "valid transfer",
			modType:     ModificationTypeTraspaso,
			amount:      decimal.NewFromInt(100),
			fromItemID:  strPtr("item-1"),
			toItemID:    strPtr("item-2"),
			expectError: nil,
		},
		{
			name:        "valid supplemental credit without item",
			modType:     ModificationTypeCreditoAdicional,
			amount:      decimal.NewFromInt(100),
			expectError: nil,
		},
		{
			name:        "zero amount",
			modType:     ModificationTypeTraspaso,
			amount:      decimal.Zero,
			fromItemID:  strPtr("item-1"),
			toItemID:    strPtr("item-2"),
			expectError: ErrInvalidAmount,
		},
		{
			name:        "negative amount",
			modType:     ModificationTypeReduccion,
			amount:      decimal.NewFromInt(-50),
			expectError: ErrInvalidAmount,
		},
		{
			name:        "transfer missing source item",
			modType:     ModificationTypeTraspaso,
			amount:      decimal.NewFromInt(100),
			toItemID:    strPtr("item-2"),
			expectError: ErrMissingItemReference,
		},
		{
			name:        "transfer between same item",
			modType:     ModificationTypeTraspaso,
			amount:      decimal.NewFromInt(100),
			fromItemID:  strPtr("item-1"),
			toItemID:    strPtr("item-1"),
			expectError: ErrMissingItemReference,
		},
		{
			name:        "rectification without justification",
			modType:     ModificationTypeRectificacion,
			amount:      decimal.NewFromInt(100),
			expectError: ErrMissingJustification,
		},
		{
			name:          "rectification with justification",
			modType:       ModificationTypeRectificacion,
			amount:        decimal.NewFromInt(100),
			justification: "clerical correction",
			expectError:   nil,
		},
		{
			name:        "unknown type",
			modType:     ModificationType("AMPLIACION"),
			amount:      decimal.NewFromInt(100),
			expectError: ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod := &BudgetModification{
				Type:          tt.modType,
				Amount:        tt.amount,
				FromItemID:    tt.fromItemID,
				ToItemID:      tt.toItemID,
				Justification: tt.justification,
			}

			err := mod.Validate()

			if tt.expectError == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.expectError != nil && err != tt.expectError {
				t.Errorf("expected error %v, got %v", tt.expectError, err)
			}
		})
	}
}

func TestModificationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    ModificationStatus
		to      ModificationStatus
		allowed bool
	}{
		{ModificationStatusPending, ModificationStatusApproved, true},
		{ModificationStatusPending, ModificationStatusRejected, true},
		{ModificationStatusPending, ModificationStatusPending, false},
		{ModificationStatusApproved, ModificationStatusRejected, false},
		{ModificationStatusApproved, ModificationStatusApproved, false},
		{ModificationStatusRejected, ModificationStatusApproved, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestBudgetModification_Approve(t *testing.T) {
	now := time.Now().UTC()

	mod := &BudgetModification{
		ID:     "mod-1",
		Status: ModificationStatusPending,
	}

	if err := mod.Approve("actor-1", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mod.Status != ModificationStatusApproved {
		t.Errorf("expected status APPROVED, got %s", mod.Status)
	}
	if mod.ApprovedBy == nil || *mod.ApprovedBy != "actor-1" {
		t.Errorf("expected approvedBy actor-1, got %v", mod.ApprovedBy)
	}
	if mod.ApprovedAt == nil || !mod.ApprovedAt.Equal(now) {
		t.Errorf("expected approvedAt %v, got %v", now, mod.ApprovedAt)
	}

	// Second approval on a terminal record must fail.
	if err := mod.Approve("actor-2", now); err != ErrInvalidState {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
	if *mod.ApprovedBy != "actor-1" {
		t.Errorf("terminal record mutated by failed transition")
	}
}

func TestBudgetModification_Reject(t *testing.T) {
	now := time.Now().UTC()

	mod := &BudgetModification{
		ID:     "mod-1",
		Status: ModificationStatusPending,
	}

	if err := mod.Reject("actor-1", "duplicate request", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mod.Status != ModificationStatusRejected {
		t.Errorf("expected status REJECTED, got %s", mod.Status)
	}
	if mod.Notes == nil || *mod.Notes != "duplicate request" {
		t.Errorf("expected notes to carry the reason, got %v", mod.Notes)
	}

	if err := mod.Approve("actor-2", now); err != ErrInvalidState {
		t.Errorf("expected ErrInvalidState after rejection, got %v", err)
	}
}

func TestValidateModification(t *testing.T) {
	activeBudget := &Budget{ID: "budget-1", Status: BudgetStatusActive}
	draftBudget := &Budget{ID: "budget-1", Status: BudgetStatusDraft}

	fromItem := &BudgetItem{
		ID:              "item-1",
		BudgetID:        "budget-1",
		AllocatedAmount: decimal.NewFromInt(100),
		AvailableAmount: decimal.NewFromInt(70),
	}
	toItem := &BudgetItem{
		ID:              "item-2",
		BudgetID:        "budget-1",
		AllocatedAmount: decimal.NewFromInt(50),
		AvailableAmount: decimal.NewFromInt(50),
	}
	foreignItem := &BudgetItem{
		ID:              "item-3",
		BudgetID:        "budget-2",
		AvailableAmount: decimal.NewFromInt(500),
	}

	tests := []struct {
		name        string
		mod         *BudgetModification
		budget      *Budget
		fromItem    *BudgetItem
		toItem      *BudgetItem
		expectError error
	}{
		{
			name: "transfer within available funds",
			mod: &BudgetModification{
				Type:       ModificationTypeTraspaso,
				Amount:     decimal.NewFromInt(30),
				FromItemID: strPtr("item-1"),
				ToItemID:   strPtr("item-2"),
			},
			budget:   activeBudget,
			fromItem: fromItem,
			toItem:   toItem,
		},
		{
			name: "transfer of exactly the available amount",
			mod: &BudgetModification{
				Type:       ModificationTypeTraspaso,
				Amount:     decimal.NewFromInt(70),
				FromItemID: strPtr("item-1"),
				ToItemID:   strPtr("item-2"),
			},
			budget:   activeBudget,
			fromItem: fromItem,
			toItem:   toItem,
		},
		{
			name: "transfer one cent over the available amount",
			mod: &BudgetModification{
				Type:       ModificationTypeTraspaso,
				Amount:     decimal.RequireFromString("70.01"),
				FromItemID: strPtr("item-1"),
				ToItemID:   strPtr("item-2"),
			},
			budget:      activeBudget,
			fromItem:    fromItem,
			toItem:      toItem,
			expectError: ErrInsufficientFunds,
		},
		{
			name: "budget not active",
			mod: &BudgetModification{
				Type:   ModificationTypeCreditoAdicional,
				Amount: decimal.NewFromInt(100),
			},
			budget:      draftBudget,
			expectError: ErrBudgetNotActive,
		},
		{
			name: "item from different budget",
			mod: &BudgetModification{
				Type:       ModificationTypeTraspaso,
				Amount:     decimal.NewFromInt(10),
				FromItemID: strPtr("item-3"),
				ToItemID:   strPtr("item-2"),
			},
			budget:      activeBudget,
			fromItem:    foreignItem,
			toItem:      toItem,
			expectError: ErrItemBudgetMismatch,
		},
		{
			name: "reduction checked against source item funds",
			mod: &BudgetModification{
				Type:       ModificationTypeReduccion,
				Amount:     decimal.NewFromInt(500),
				FromItemID: strPtr("item-1"),
			},
			budget:      activeBudget,
			fromItem:    fromItem,
			expectError: ErrInsufficientFunds,
		},
		{
			name: "budget-level reduction has no item precondition",
			mod: &BudgetModification{
				Type:   ModificationTypeReduccion,
				Amount: decimal.NewFromInt(500),
			},
			budget: activeBudget,
		},
		{
			name: "rectification needs only a justification",
			mod: &BudgetModification{
				Type:          ModificationTypeRectificacion,
				Amount:        decimal.NewFromInt(1),
				Justification: "fix wrong reference",
			},
			budget: activeBudget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModification(tt.mod, tt.budget, tt.fromItem, tt.toItem)

			if tt.expectError == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.expectError != nil && err != tt.expectError {
				t.Errorf("expected error %v, got %v", tt.expectError, err)
			}
		})
	}
}
