package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ayto/budgetledger/internal/domain"
	"github.com/ayto/budgetledger/internal/usecase"
)

// CreateModificationRequest represents a request to open a modification.
type CreateModificationRequest struct {
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference"`
	Description   string          `json:"description"`
	Justification string          `json:"justification"`
	FromItemID    *string         `json:"from_item_id,omitempty"`
	ToItemID      *string         `json:"to_item_id,omitempty"`
}

// ToUseCaseInput converts to use case input. The budget comes from the URL
// and the actor from the authenticated request context.
func (r *CreateModificationRequest) ToUseCaseInput(budgetID, actorID string) usecase.CreateModificationInput {
	return usecase.CreateModificationInput{
		BudgetID:      budgetID,
		Type:          domain.ModificationType(r.Type),
		Amount:        r.Amount,
		Reference:     r.Reference,
		Description:   r.Description,
		Justification: r.Justification,
		FromItemID:    r.FromItemID,
		ToItemID:      r.ToItemID,
		ActorID:       actorID,
	}
}

// RejectModificationRequest carries the reviewer's reason for a rejection.
type RejectModificationRequest struct {
	Reason string `json:"reason"`
}
