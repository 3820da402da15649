package ports

import (
	"context"
	"time"

	"github.com/wanderhub/travel-listings/internal/core/domain"
)

// AuthService defines account registration and session lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout invalidates the presented token server-side. When the
	// invalidation fails the caller must keep its local session state
	// untouched.
	Logout(ctx context.Context, token string) error
}

// TokenRevoker records tokens that have been signed out before their
// expiry and answers whether a token has been revoked.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
