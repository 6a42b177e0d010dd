package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ModificationType identifies the ledger effect of a budget modification.
// The set is closed; the applier dispatches on it exhaustively.
type ModificationType string

const (
	// ModificationTypeTraspaso transfers funds between two items of the same
	// budget. The budget total is unchanged.
	ModificationTypeTraspaso ModificationType = "TRASPASO"

	// ModificationTypeCreditoAdicional injects new funds into the budget and,
	// optionally, into a target item.
	ModificationTypeCreditoAdicional ModificationType = "CREDITO_ADICIONAL"

	// ModificationTypeReduccion removes funds from the budget and, optionally,
	// from a source item.
	ModificationTypeReduccion ModificationType = "REDUCCION"

	// ModificationTypeRectificacion records a correction without a numeric
	// ledger effect. Pending product clarification on whether a delta should
	// ever apply; until then approval only changes status.
	ModificationTypeRectificacion ModificationType = "RECTIFICACION"
)

var validModificationTypes = map[ModificationType]bool{
	ModificationTypeTraspaso:         true,
	ModificationTypeCreditoAdicional: true,
	ModificationTypeReduccion:        true,
	ModificationTypeRectificacion:    true,
}

// IsValid reports whether t is a known modification type.
func (t ModificationType) IsValid() bool {
	return validModificationTypes[t]
}

// ModificationStatus is the workflow status of a modification.
type ModificationStatus string

const (
	ModificationStatusPending  ModificationStatus = "PENDING"
	ModificationStatusApproved ModificationStatus = "APPROVED"
	ModificationStatusRejected ModificationStatus = "REJECTED"
)

// IsTerminal reports whether the status admits no further transition.
func (s ModificationStatus) IsTerminal() bool {
	return s == ModificationStatusApproved || s == ModificationStatusRejected
}

// CanTransitionTo reports whether the transition s -> next is allowed.
// The only legal transitions are PENDING -> APPROVED and PENDING -> REJECTED.
func (s ModificationStatus) CanTransitionTo(next ModificationStatus) bool {
	return s == ModificationStatusPending && next.IsTerminal()
}

// BudgetModification is the unit of change control over budget items. A
// record is created PENDING and transitions exactly once to APPROVED or
// REJECTED; it is never deleted.
type BudgetModification struct {
	ID            string
	BudgetID      string
	Type          ModificationType
	Reference     string
	Description   string
	Amount        decimal.Decimal
	Justification string
	Status        ModificationStatus
	FromItemID    *string
	ToItemID      *string
	ApprovedBy    *string
	ApprovedAt    *time.Time
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the shape of the modification request independent of any
// budget or item state.
func (m *BudgetModification) Validate() error {
	if !m.Type.IsValid() {
		return ErrInvalidType
	}

	if m.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if m.Type == ModificationTypeTraspaso {
		if m.FromItemID == nil || m.ToItemID == nil {
			return ErrMissingItemReference
		}
		if *m.FromItemID == *m.ToItemID {
			return ErrMissingItemReference
		}
	}

	if m.Type == ModificationTypeRectificacion && m.Justification == "" {
		return ErrMissingJustification
	}

	return nil
}

// Approve transitions the modification to APPROVED. Callers must apply the
// ledger deltas in the same transaction that persists this transition.
func (m *BudgetModification) Approve(actorID string, now time.Time) error {
	if !m.Status.CanTransitionTo(ModificationStatusApproved) {
		return ErrInvalidState
	}

	m.Status = ModificationStatusApproved
	m.ApprovedBy = &actorID
	m.ApprovedAt = &now
	m.UpdatedAt = now

	return nil
}

// Reject transitions the modification to REJECTED and records the reason.
// No ledger effect ever follows a rejection.
func (m *BudgetModification) Reject(actorID, reason string, now time.Time) error {
	if !m.Status.CanTransitionTo(ModificationStatusRejected) {
		return ErrInvalidState
	}

	m.Status = ModificationStatusRejected
	m.ApprovedBy = &actorID
	m.ApprovedAt = &now
	m.Notes = &reason
	m.UpdatedAt = now

	return nil
}

// ValidateModification decides whether the modification is admissible against
// the given budget and item state. It has no side effects and is safe to call
// both at request time and again, inside the approval transaction, against
// freshly locked rows. fromItem and toItem may be nil when the modification
// does not reference them.
func ValidateModification(m *BudgetModification, budget *Budget, fromItem, toItem *BudgetItem) error {
	if err := m.Validate(); err != nil {
		return err
	}

	if !budget.IsActive() {
		return ErrBudgetNotActive
	}

	if fromItem != nil && fromItem.BudgetID != budget.ID {
		return ErrItemBudgetMismatch
	}
	if toItem != nil && toItem.BudgetID != budget.ID {
		return ErrItemBudgetMismatch
	}

	switch m.Type {
	case ModificationTypeTraspaso:
		if fromItem == nil || toItem == nil {
			return ErrMissingItemReference
		}
		return fromItem.ValidateDecrease(m.Amount)
	case ModificationTypeReduccion:
		if fromItem != nil {
			return fromItem.ValidateDecrease(m.Amount)
		}
	case ModificationTypeCreditoAdicional, ModificationTypeRectificacion:
		// No amount-side precondition.
	}

	return nil
}
