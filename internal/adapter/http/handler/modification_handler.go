package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayto/budgetledger/internal/adapter/http/dto"
	"github.com/ayto/budgetledger/internal/domain"
	"github.com/ayto/budgetledger/internal/usecase"
)

// ModificationService is the slice of ModificationUseCase the handler needs.
type ModificationService interface {
	CreateModification(ctx context.Context, input usecase.CreateModificationInput) (*domain.BudgetModification, error)
	ApproveModification(ctx context.Context, id, actorID string) (*domain.BudgetModification, error)
	RejectModification(ctx context.Context, id, actorID, reason string) (*domain.BudgetModification, error)
}

// ModificationQueryService is the slice of QueryUseCase the handler needs.
type ModificationQueryService interface {
	GetModification(ctx context.Context, id string) (*usecase.ModificationDetail, error)
	ListModifications(ctx context.Context, input usecase.ListModificationsInput) ([]*domain.BudgetModification, error)
}

// AuditReader reads the audit trail of a resource.
type AuditReader interface {
	GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error)
}

// ModificationHandler handles modification-related HTTP requests.
type ModificationHandler struct {
	modUC     ModificationService
	queryUC   ModificationQueryService
	auditRepo AuditReader
}

// NewModificationHandler creates a new ModificationHandler.
func NewModificationHandler(modUC ModificationService, queryUC ModificationQueryService, auditRepo AuditReader) *ModificationHandler {
	return &ModificationHandler{
		modUC:     modUC,
		queryUC:   queryUC,
		auditRepo: auditRepo,
	}
}

// Create opens a new PENDING modification against a budget.
func (h *ModificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "id")
	if budgetID == "" {
		writeError(w, http.StatusBadRequest, "missing budget ID", "")
		return
	}

	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	if !actor.Role.CanRequest() {
		writeError(w, http.StatusForbidden, "forbidden", domain.ErrInsufficientRole.Error())
		return
	}

	var req dto.CreateModificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	mod, err := h.modUC.CreateModification(r.Context(), req.ToUseCaseInput(budgetID, actor.ID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create modification", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.ModificationFromDomain(mod))
}

// Get retrieves a modification with its resolved budget and items.
func (h *ModificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing modification ID", "")
		return
	}

	detail, err := h.queryUC.GetModification(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get modification", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ModificationDetailFromUseCase(detail))
}

// Approve transitions a PENDING modification to APPROVED and applies its
// funds effects.
func (h *ModificationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing modification ID", "")
		return
	}

	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	if !actor.Role.CanResolve() {
		writeError(w, http.StatusForbidden, "forbidden", domain.ErrInsufficientRole.Error())
		return
	}

	mod, err := h.modUC.ApproveModification(r.Context(), id, actor.ID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to approve modification", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ModificationFromDomain(mod))
}

// Reject transitions a PENDING modification to REJECTED.
func (h *ModificationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing modification ID", "")
		return
	}

	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	if !actor.Role.CanResolve() {
		writeError(w, http.StatusForbidden, "forbidden", domain.ErrInsufficientRole.Error())
		return
	}

	var req dto.RejectModificationRequest
	if r.Body != nil {
		// Reason is optional; an empty body rejects without notes.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	mod, err := h.modUC.RejectModification(r.Context(), id, actor.ID, req.Reason)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to reject modification", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ModificationFromDomain(mod))
}

// ListByBudget lists a budget's modifications, newest first. Supports
// status, type, limit and offset query parameters.
func (h *ModificationHandler) ListByBudget(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "id")
	if budgetID == "" {
		writeError(w, http.StatusBadRequest, "missing budget ID", "")
		return
	}

	input := usecase.ListModificationsInput{
		BudgetID: budgetID,
		Limit:    parseIntQuery(r, "limit", 20),
		Offset:   parseIntQuery(r, "offset", 0),
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.ModificationStatus(s)
		input.Status = &status
	}
	if t := r.URL.Query().Get("type"); t != "" {
		typ := domain.ModificationType(t)
		input.Type = &typ
	}

	mods, err := h.queryUC.ListModifications(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list modifications", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ModificationsFromDomain(mods))
}

// AuditTrail lists the audit log entries of a modification.
func (h *ModificationHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing modification ID", "")
		return
	}

	logs, err := h.auditRepo.GetByResourceID(r.Context(), "modification", id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get audit trail", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AuditLogsFromDomain(logs))
}

// requireActor extracts the actor resolved by the auth middleware. Writes a
// 401 and returns false when the request carries no identity.
func requireActor(w http.ResponseWriter, r *http.Request) (*domain.Actor, bool) {
	actor, ok := domain.ActorFromContext(r.Context())
	if !ok || actor.ID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "request carries no actor identity")
		return nil, false
	}

	return actor, true
}
