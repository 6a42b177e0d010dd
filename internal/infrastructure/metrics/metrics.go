package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Modification metrics
	ModificationsCreated  *prometheus.CounterVec
	ModificationsApproved *prometheus.CounterVec
	ModificationsRejected *prometheus.CounterVec
	ApprovalDuration      prometheus.Histogram
	ModificationAmount    prometheus.Histogram
	InsufficientFunds     prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec
	TxRetries     prometheus.Counter

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec
	CacheHits       prometheus.Counter
	CacheMisses     prometheus.Counter

	// Outbox metrics
	OutboxPublished prometheus.Counter
	OutboxPending   prometheus.Gauge

	// Audit metrics
	AuditLogsCreated *prometheus.CounterVec
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates all metrics on the given registerer. Tests pass a
// private registry to avoid duplicate registration panics.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Modification metrics
		ModificationsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetledger_modifications_created_total",
				Help: "Total number of budget modifications created",
			},
			[]string{"type"},
		),
		ModificationsApproved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetledger_modifications_approved_total",
				Help: "Total number of budget modifications approved",
			},
			[]string{"type"},
		),
		ModificationsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetledger_modifications_rejected_total",
				Help: "Total number of budget modifications rejected",
			},
			[]string{"type"},
		),
		ApprovalDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "budgetledger_approval_duration_seconds",
			Help:    "Duration of modification approval operations",
			Buckets: prometheus.DefBuckets,
		}),
		ModificationAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "budgetledger_modification_amount",
			Help:    "Modification amounts",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
		}),
		InsufficientFunds: factory.NewCounter(prometheus.CounterOpts{
			Name: "budgetledger_insufficient_funds_total",
			Help: "Total number of approvals failed for insufficient available funds",
		}),

		// API metrics
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetledger_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "budgetledger_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetledger_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "budgetledger_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "budgetledger_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetledger_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),
		TxRetries: factory.NewCounter(prometheus.CounterOpts{
			Name: "budgetledger_tx_retries_total",
			Help: "Total transaction retries after serialization failures or deadlocks",
		}),

		// Redis metrics
		RedisOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetledger_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetledger_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "budgetledger_cache_hits_total",
			Help: "Total stats cache hits",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "budgetledger_cache_misses_total",
			Help: "Total stats cache misses",
		}),

		// Outbox metrics
		OutboxPublished: factory.NewCounter(prometheus.CounterOpts{
			Name: "budgetledger_outbox_published_total",
			Help: "Total outbox events published",
		}),
		OutboxPending: factory.NewGauge(prometheus.GaugeOpts{
			Name: "budgetledger_outbox_pending",
			Help: "Current number of unpublished outbox events",
		}),

		// Audit metrics
		AuditLogsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetledger_audit_logs_total",
				Help: "Total audit logs created",
			},
			[]string{"action", "status"},
		),
	}
}
