package middleware

import (
	"net/http"
	"strings"

	"github.com/ayto/budgetledger/internal/domain"
	"github.com/ayto/budgetledger/internal/infrastructure/auth"
)

const (
	// ActorIDHeader carries the actor identity when JWT auth is disabled
	// and an upstream gateway already authenticated the request.
	ActorIDHeader = "X-Actor-ID"

	// ActorRoleHeader optionally carries the actor's role alongside
	// ActorIDHeader. Unknown or missing roles default to operator.
	ActorRoleHeader = "X-Actor-Role"
)

// Auth resolves the actor performing the request into the context. When a
// JWT manager is configured, a Bearer token is required; otherwise the
// identity comes from the gateway headers.
type Auth struct {
	jwtManager *auth.JWTManager
}

// NewAuth creates the auth middleware. jwtManager may be nil to run in
// header-trust mode.
func NewAuth(jwtManager *auth.JWTManager) *Auth {
	return &Auth{jwtManager: jwtManager}
}

// Wrap wraps an http.Handler with actor resolution.
func (a *Auth) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.jwtManager == nil {
			next.ServeHTTP(w, r.WithContext(
				domain.ContextWithActor(r.Context(), actorFromHeaders(r)),
			))
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "missing authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
			return
		}

		claims, err := a.jwtManager.Verify(parts[1])
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		actor := &domain.Actor{
			ID:   claims.ActorID,
			Name: claims.Name,
			Role: claims.Role,
		}

		next.ServeHTTP(w, r.WithContext(domain.ContextWithActor(r.Context(), actor)))
	})
}

func actorFromHeaders(r *http.Request) *domain.Actor {
	actor := &domain.Actor{
		ID:   r.Header.Get(ActorIDHeader),
		Role: domain.RoleOperator,
	}

	if role := domain.Role(r.Header.Get(ActorRoleHeader)); role.IsValid() {
		actor.Role = role
	}

	return actor
}
