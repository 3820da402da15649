package session

import (
	"context"

	"github.com/rs/zerolog"
)

// RoleSource is the backing store's answer to "what is this user's role".
type RoleSource interface {
	RoleByID(ctx context.Context, userID string) (string, error)
}

// Resolver maps a user id to an authorization role with a cache-first
// strategy: a cached role is trusted without a backend lookup; a miss falls
// through to a point lookup and writes the result back.
//
// Failure is local. A failed lookup is logged and reported as an empty role,
// never an error: the gate then treats the session as authenticated but
// unauthorized, which is distinct from anonymous.
type Resolver struct {
	cache  RoleCache
	source RoleSource
	log    zerolog.Logger
}

func NewResolver(cache RoleCache, source RoleSource, log zerolog.Logger) *Resolver {
	return &Resolver{cache: cache, source: source, log: log}
}

// Resolve returns the role for userID, or "" when it cannot be determined.
// An empty userID performs no lookup at all.
func (r *Resolver) Resolve(ctx context.Context, userID string) string {
	if userID == "" {
		return ""
	}

	if role, err := r.cache.Get(ctx, userID); err != nil {
		r.log.Debug().Err(err).Str("user_id", userID).Msg("role cache read failed")
	} else if role != "" {
		return role
	}

	role, err := r.source.RoleByID(ctx, userID)
	if err != nil {
		r.log.Error().Err(err).Str("user_id", userID).Msg("role lookup failed")
		return ""
	}

	if err := r.cache.Set(ctx, userID, role); err != nil {
		r.log.Debug().Err(err).Str("user_id", userID).Msg("role cache write failed")
	}

	return role
}

// ResolveInto reconciles the store's session: when the store already holds a
// role for the current user (the provisional persisted value), it is trusted
// for this session and no lookup happens; otherwise the role is resolved and
// written into the store.
func (r *Resolver) ResolveInto(ctx context.Context, store *Store) {
	cur := store.Current()
	if cur.UserID == "" || cur.Role != "" {
		return
	}
	if role := r.Resolve(ctx, cur.UserID); role != "" {
		store.SetRole(ctx, role)
	}
}

// ResolveFresh drops any cached role before resolving. Used on every new
// sign-in so a role cached by a previous session is never reused.
func (r *Resolver) ResolveFresh(ctx context.Context, store *Store) {
	cur := store.Current()
	if cur.UserID == "" {
		return
	}
	r.Invalidate(ctx, cur.UserID)
	if role := r.Resolve(ctx, cur.UserID); role != "" {
		store.SetRole(ctx, role)
	}
}

// Invalidate removes the cached role for a user.
func (r *Resolver) Invalidate(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	if err := r.cache.Del(ctx, userID); err != nil {
		r.log.Debug().Err(err).Str("user_id", userID).Msg("role cache invalidation failed")
	}
}
