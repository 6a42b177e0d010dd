package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ayto/budgetledger/internal/domain"
	"github.com/ayto/budgetledger/internal/infrastructure/postgres/generated"
	"github.com/ayto/budgetledger/internal/usecase"
)

// AuditRepository implements usecase.AuditRepository.
type AuditRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
	idGen   usecase.IDGenerator
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(pool *pgxpool.Pool, idGen usecase.IDGenerator) *AuditRepository {
	return &AuditRepository{
		pool:    pool,
		queries: generated.New(pool),
		idGen:   idGen,
	}
}

// Create inserts a new audit log entry outside any transaction. Used for
// failed operations, where the business transaction rolled back but the
// attempt still needs a trace.
func (r *AuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	return r.create(ctx, r.queries, log)
}

// CreateTx inserts a new audit log entry inside the given transaction, so the
// trace commits or rolls back with the business change.
func (r *AuditRepository) CreateTx(ctx context.Context, tx usecase.Transaction, log *domain.AuditLog) error {
	pgxTx := tx.(*Tx).PgxTx()

	return r.create(ctx, generated.New(pgxTx), log)
}

func (r *AuditRepository) create(ctx context.Context, queries *generated.Queries, log *domain.AuditLog) error {
	if log.ID == "" {
		log.ID = r.idGen.Generate()
	}

	beforeState, err := marshalState(log.BeforeState)
	if err != nil {
		return err
	}

	afterState, err := marshalState(log.AfterState)
	if err != nil {
		return err
	}

	var requestID, errorMessage *string
	if log.RequestID != "" {
		requestID = &log.RequestID
	}
	if log.ErrorMessage != "" {
		errorMessage = &log.ErrorMessage
	}

	return queries.CreateAuditLog(ctx, generated.CreateAuditLogParams{
		ID:           log.ID,
		ActorID:      log.ActorID,
		Action:       log.Action,
		ResourceType: log.ResourceType,
		ResourceID:   log.ResourceID,
		RequestID:    stringPtrToPgText(requestID),
		BeforeState:  beforeState,
		AfterState:   afterState,
		Status:       log.Status,
		ErrorMessage: stringPtrToPgText(errorMessage),
		CreatedAt:    timeToPgTimestamptz(log.CreatedAt),
	})
}

// List retrieves audit logs matching the filter, newest first.
func (r *AuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	query := `
		SELECT id, actor_id, action, resource_type, resource_id, request_id,
		       before_state, after_state, status, error_message, created_at
		FROM audit_logs
		WHERE 1=1
	`
	args := []any{}
	argPos := 1

	addCondition := func(clause string, value any) {
		query += fmt.Sprintf(clause, argPos)
		args = append(args, value)
		argPos++
	}

	if filter.ActorID != "" {
		addCondition(` AND actor_id = $%d`, filter.ActorID)
	}
	if filter.Action != "" {
		addCondition(` AND action = $%d`, filter.Action)
	}
	if filter.ResourceType != "" {
		addCondition(` AND resource_type = $%d`, filter.ResourceType)
	}
	if filter.ResourceID != "" {
		addCondition(` AND resource_id = $%d`, filter.ResourceID)
	}
	if filter.StartDate != nil {
		addCondition(` AND created_at >= $%d`, *filter.StartDate)
	}
	if filter.EndDate != nil {
		addCondition(` AND created_at < $%d`, *filter.EndDate)
	}

	query += ` ORDER BY created_at DESC`

	if filter.Limit > 0 {
		addCondition(` LIMIT $%d`, filter.Limit)
	}
	if filter.Offset > 0 {
		addCondition(` OFFSET $%d`, filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.AuditLog
	for rows.Next() {
		var log domain.AuditLog
		var requestID, errorMessage *string
		var beforeStateRaw, afterStateRaw []byte

		err := rows.Scan(
			&log.ID,
			&log.ActorID,
			&log.Action,
			&log.ResourceType,
			&log.ResourceID,
			&requestID,
			&beforeStateRaw,
			&afterStateRaw,
			&log.Status,
			&errorMessage,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if requestID != nil {
			log.RequestID = *requestID
		}
		if errorMessage != nil {
			log.ErrorMessage = *errorMessage
		}
		if beforeStateRaw != nil {
			_ = json.Unmarshal(beforeStateRaw, &log.BeforeState)
		}
		if afterStateRaw != nil {
			_ = json.Unmarshal(afterStateRaw, &log.AfterState)
		}

		logs = append(logs, &log)
	}

	return logs, rows.Err()
}

// GetByResourceID retrieves all audit logs for a specific resource.
func (r *AuditRepository) GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error) {
	rows, err := r.queries.GetAuditLogsByResource(ctx, generated.GetAuditLogsByResourceParams{
		ResourceType: resourceType,
		ResourceID:   resourceID,
	})
	if err != nil {
		return nil, err
	}

	logs := make([]*domain.AuditLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, rowToAuditLog(row))
	}

	return logs, nil
}

func rowToAuditLog(row generated.AuditLog) *domain.AuditLog {
	log := &domain.AuditLog{
		ID:           row.ID,
		ActorID:      row.ActorID,
		Action:       row.Action,
		ResourceType: row.ResourceType,
		ResourceID:   row.ResourceID,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt.Time,
	}

	if row.RequestID.Valid {
		log.RequestID = row.RequestID.String
	}
	if row.ErrorMessage.Valid {
		log.ErrorMessage = row.ErrorMessage.String
	}
	if row.BeforeState != nil {
		_ = json.Unmarshal(row.BeforeState, &log.BeforeState)
	}
	if row.AfterState != nil {
		_ = json.Unmarshal(row.AfterState, &log.AfterState)
	}

	return log
}

func marshalState(state domain.JSON) ([]byte, error) {
	if state == nil {
		return nil, nil
	}

	return json.Marshal(state)
}
