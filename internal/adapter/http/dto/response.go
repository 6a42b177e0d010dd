package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ayto/budgetledger/internal/domain"
	"github.com/ayto/budgetledger/internal/usecase"
)

// ModificationResponse represents a modification in API responses.
type ModificationResponse struct {
	ID            string          `json:"id"`
	BudgetID      string          `json:"budget_id"`
	Type          string          `json:"type"`
	Reference     string          `json:"reference"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Justification string          `json:"justification"`
	Status        string          `json:"status"`
	FromItemID    *string         `json:"from_item_id,omitempty"`
	ToItemID      *string         `json:"to_item_id,omitempty"`
	ApprovedBy    *string         `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time      `json:"approved_at,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ModificationFromDomain converts a domain modification to a response.
func ModificationFromDomain(m *domain.BudgetModification) *ModificationResponse {
	return &ModificationResponse{
		ID:            m.ID,
		BudgetID:      m.BudgetID,
		Type:          string(m.Type),
		Reference:     m.Reference,
		Description:   m.Description,
		Amount:        m.Amount,
		Justification: m.Justification,
		Status:        string(m.Status),
		FromItemID:    m.FromItemID,
		ToItemID:      m.ToItemID,
		ApprovedBy:    m.ApprovedBy,
		ApprovedAt:    m.ApprovedAt,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ModificationsFromDomain converts domain modifications to responses.
func ModificationsFromDomain(mods []*domain.BudgetModification) []*ModificationResponse {
	result := make([]*ModificationResponse, len(mods))
	for i, m := range mods {
		result[i] = ModificationFromDomain(m)
	}
	return result
}

// ModificationDetailResponse is a modification with its resolved entities.
type ModificationDetailResponse struct {
	Modification *ModificationResponse `json:"modification"`
	Budget       *BudgetResponse       `json:"budget"`
	FromItem     *BudgetItemResponse   `json:"from_item,omitempty"`
	ToItem       *BudgetItemResponse   `json:"to_item,omitempty"`
}

// ModificationDetailFromUseCase converts a use case detail to a response.
func ModificationDetailFromUseCase(d *usecase.ModificationDetail) *ModificationDetailResponse {
	resp := &ModificationDetailResponse{
		Modification: ModificationFromDomain(d.Modification),
		Budget:       BudgetFromDomain(d.Budget),
	}
	if d.FromItem != nil {
		resp.FromItem = BudgetItemFromDomain(d.FromItem)
	}
	if d.ToItem != nil {
		resp.ToItem = BudgetItemFromDomain(d.ToItem)
	}
	return resp
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID              string          `json:"id"`
	FiscalYear      int             `json:"fiscal_year"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	BaseAllocated   decimal.Decimal `json:"base_allocated"`
	EstimatedIncome decimal.Decimal `json:"estimated_income"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BudgetFromDomain converts a domain budget to a response.
func BudgetFromDomain(b *domain.Budget) *BudgetResponse {
	return &BudgetResponse{
		ID:              b.ID,
		FiscalYear:      b.FiscalYear,
		TotalAmount:     b.TotalAmount,
		BaseAllocated:   b.BaseAllocated,
		EstimatedIncome: b.EstimatedIncome,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// BudgetItemResponse represents a budget item in API responses.
type BudgetItemResponse struct {
	ID              string          `json:"id"`
	BudgetID        string          `json:"budget_id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	CommittedAmount decimal.Decimal `json:"committed_amount"`
	AccruedAmount   decimal.Decimal `json:"accrued_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	AvailableAmount decimal.Decimal `json:"available_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BudgetItemFromDomain converts a domain budget item to a response.
func BudgetItemFromDomain(i *domain.BudgetItem) *BudgetItemResponse {
	return &BudgetItemResponse{
		ID:              i.ID,
		BudgetID:        i.BudgetID,
		Code:            i.Code,
		Name:            i.Name,
		AllocatedAmount: i.AllocatedAmount,
		CommittedAmount: i.CommittedAmount,
		AccruedAmount:   i.AccruedAmount,
		PaidAmount:      i.PaidAmount,
		AvailableAmount: i.AvailableAmount,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

// BudgetItemsFromDomain converts domain budget items to responses.
func BudgetItemsFromDomain(items []*domain.BudgetItem) []*BudgetItemResponse {
	result := make([]*BudgetItemResponse, len(items))
	for i, item := range items {
		result[i] = BudgetItemFromDomain(item)
	}
	return result
}

// BudgetDetailResponse is a budget with its items.
type BudgetDetailResponse struct {
	Budget *BudgetResponse       `json:"budget"`
	Items  []*BudgetItemResponse `json:"items"`
}

// StatsResponse represents modification statistics in API responses.
type StatsResponse struct {
	BudgetID            string           `json:"budget_id"`
	Total               int64            `json:"total"`
	Pending             int64            `json:"pending"`
	Approved            int64            `json:"approved"`
	Rejected            int64            `json:"rejected"`
	ByType              map[string]int64 `json:"by_type"`
	TotalApprovedAmount decimal.Decimal  `json:"total_approved_amount"`
}

// StatsFromUseCase converts use case stats to a response.
func StatsFromUseCase(budgetID string, s *usecase.ModificationStats) *StatsResponse {
	byType := make(map[string]int64, len(s.ByType))
	for t, c := range s.ByType {
		byType[string(t)] = c
	}
	return &StatsResponse{
		BudgetID:            budgetID,
		Total:               s.Total,
		Pending:             s.Pending,
		Approved:            s.Approved,
		Rejected:            s.Rejected,
		ByType:              byType,
		TotalApprovedAmount: s.TotalApprovedAmount,
	}
}

// ConsistencyResponse represents a consistency check result.
type ConsistencyResponse struct {
	BudgetID          string          `json:"budget_id"`
	AllocatedSum      decimal.Decimal `json:"allocated_sum"`
	ExpectedAllocated decimal.Decimal `json:"expected_allocated"`
	Difference        decimal.Decimal `json:"difference"`
	InvalidItemIDs    []string        `json:"invalid_item_ids,omitempty"`
	IsConsistent      bool            `json:"is_consistent"`
	CheckedAt         time.Time       `json:"checked_at"`
}

// ConsistencyFromUseCase converts a consistency result to a response.
func ConsistencyFromUseCase(r *usecase.BudgetConsistencyResult) *ConsistencyResponse {
	return &ConsistencyResponse{
		BudgetID:          r.BudgetID,
		AllocatedSum:      r.AllocatedSum,
		ExpectedAllocated: r.ExpectedAllocated,
		Difference:        r.Difference,
		InvalidItemIDs:    r.InvalidItemIDs,
		IsConsistent:      r.IsConsistent,
		CheckedAt:         r.CheckedAt,
	}
}

// AuditLogResponse represents an audit log entry in API responses.
type AuditLogResponse struct {
	ID           string         `json:"id"`
	ActorID      string         `json:"actor_id"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	RequestID    string         `json:"request_id,omitempty"`
	BeforeState  map[string]any `json:"before_state,omitempty"`
	AfterState   map[string]any `json:"after_state,omitempty"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// AuditLogFromDomain converts a domain audit log to a response.
func AuditLogFromDomain(l *domain.AuditLog) *AuditLogResponse {
	return &AuditLogResponse{
		ID:           l.ID,
		ActorID:      l.ActorID,
		Action:       l.Action,
		ResourceType: l.ResourceType,
		ResourceID:   l.ResourceID,
		RequestID:    l.RequestID,
		BeforeState:  l.BeforeState,
		AfterState:   l.AfterState,
		Status:       l.Status,
		ErrorMessage: l.ErrorMessage,
		CreatedAt:    l.CreatedAt,
	}
}

// AuditLogsFromDomain converts domain audit logs to responses.
func AuditLogsFromDomain(logs []*domain.AuditLog) []*AuditLogResponse {
	result := make([]*AuditLogResponse, len(logs))
	for i, l := range logs {
		result[i] = AuditLogFromDomain(l)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
