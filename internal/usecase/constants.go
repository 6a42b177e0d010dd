package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running approvals from blocking item rows
	DefaultTransactionTimeout = 10 * time.Second

	// StatsCacheTTL is how long per-budget stats are cached
	StatsCacheTTL = 30 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)

func statsCacheKey(budgetID string) string {
	return "stats:" + budgetID
}
