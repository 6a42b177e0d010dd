package domain

import "time"

// Event types
const (
	EventTypeModificationCreated  = "modification.created"
	EventTypeModificationApproved = "modification.approved"
	EventTypeModificationRejected = "modification.rejected"
)

// Aggregate types
const (
	AggregateTypeModification = "modification"
	AggregateTypeBudget       = "budget"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// ModificationCreatedEvent payload
type ModificationCreatedEvent struct {
	ModificationID string `json:"modification_id"`
	BudgetID       string `json:"budget_id"`
	Type           string `json:"type"`
	Reference      string `json:"reference"`
	Amount         string `json:"amount"`
}

// ModificationApprovedEvent payload
type ModificationApprovedEvent struct {
	ModificationID string `json:"modification_id"`
	BudgetID       string `json:"budget_id"`
	Type           string `json:"type"`
	Amount         string `json:"amount"`
	ApprovedBy     string `json:"approved_by"`
}

// ModificationRejectedEvent payload
type ModificationRejectedEvent struct {
	ModificationID string `json:"modification_id"`
	BudgetID       string `json:"budget_id"`
	RejectedBy     string `json:"rejected_by"`
	Reason         string `json:"reason"`
}
