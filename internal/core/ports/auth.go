package ports

import (
	"context"

	"github.com/iapourpme/content-api/internal/core/domain"
)

// UserRepository is the persistence contract for accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SessionStore holds server-side session records keyed by session id.
// Get returns domain.ErrUnauthenticated for unknown ids.
type SessionStore interface {
	Put(ctx context.Context, session domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// AuthService authenticates credentials and opens a session.
type AuthService interface {
	// Login returns the session token to place in the cookie together with
	// the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// SessionVerifier validates an inbound session token. Every failure mode
// collapses to domain.ErrUnauthenticated.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Principal, error)
	Revoke(ctx context.Context, token string) error
}
