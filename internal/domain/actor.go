package domain

import (
	"context"
	"errors"
)

// Actor is the already-authenticated identity performing an operation.
// Authentication itself happens upstream; the ledger only consumes the
// resolved identity.
type Actor struct {
	ID   string
	Name string
	Role Role
}

// Role represents an actor's access level.
type Role string

const (
	// RoleAdmin has full access to all operations
	RoleAdmin Role = "admin"

	// RoleInterventor may approve or reject modifications
	RoleInterventor Role = "interventor"

	// RoleOperator may request modifications but not resolve them
	RoleOperator Role = "operator"

	// RoleViewer can only read, no mutations
	RoleViewer Role = "viewer"
)

var validRoles = map[Role]bool{
	RoleAdmin:       true,
	RoleInterventor: true,
	RoleOperator:    true,
	RoleViewer:      true,
}

// IsValid checks if the role is a known role.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanRequest checks if the role can create modification requests.
func (r Role) CanRequest() bool {
	return r == RoleAdmin || r == RoleInterventor || r == RoleOperator
}

// CanResolve checks if the role can approve or reject modifications.
func (r Role) CanResolve() bool {
	return r == RoleAdmin || r == RoleInterventor
}

// Authentication errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
)

type actorContextKey struct{}

// ContextWithActor returns a context carrying the actor.
func ContextWithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext extracts the actor from context, if present.
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(*Actor)
	return actor, ok
}
