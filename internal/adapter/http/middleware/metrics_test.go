package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ayto/budgetledger/internal/infrastructure/metrics"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/health", "/health"},
		{"/api/v1/budgets/", "/api/v1/budgets/"},
		{"/api/v1/budgets/bud-2026", "/api/v1/budgets/:id"},
		{"/api/v1/budgets/bud-2026/stats", "/api/v1/budgets/:id/stats"},
		{"/api/v1/budgets/bud-2026/modifications", "/api/v1/budgets/:id/modifications"},
		{"/api/v1/modifications/01JMOD", "/api/v1/modifications/:id"},
		{"/api/v1/modifications/01JMOD/approve", "/api/v1/modifications/:id/approve"},
		{"/api/v1/modifications/01JMOD/audit", "/api/v1/modifications/:id/audit"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.path); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestMetricsMiddlewareRecordsRequests(t *testing.T) {
	t.Parallel()

	m := metrics.NewWith(prometheus.NewRegistry())
	mw := NewMetricsMiddleware(m)

	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets/bud-1/modifications", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues(
		http.MethodPost, "/api/v1/budgets/:id/modifications", "201",
	))
	if got != 1 {
		t.Fatalf("expected 1 recorded request, got %v", got)
	}
}
