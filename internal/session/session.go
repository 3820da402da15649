// Package session implements the client-session core: the session store,
// the auth gateway, the role resolver, and the navigation gate.
//
// The store is the only shared mutable state here and it has a single-writer
// discipline: only the Gateway and the Resolver call its mutators. Every
// other consumer reads immutable snapshots. The discipline is organizational
// rather than enforced at runtime; the mutex exists only because Go callers
// are not confined to one event loop.
package session

import "github.com/wanderhub/travel-listings/internal/core/domain"

// Session is a snapshot of the client's current belief about who is using
// the app and with what authorization role. Role is never taken from client
// input; it is resolved through a lookup keyed by UserID.
type Session struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// State is the session's position on the authorization axis.
type State int

const (
	StateAnonymous State = iota
	// StateUnresolved is authenticated-but-unauthorized: an identity is
	// known but no role has been resolved (yet, or the lookup failed).
	// Distinct from anonymous, but gated identically for privileged actions.
	StateUnresolved
	StateUser
	StateAdmin
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateUnresolved:
		return "unresolved"
	case StateUser:
		return "user"
	case StateAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// State derives the authorization state from the snapshot.
func (s Session) State() State {
	switch {
	case s.UserID == "":
		return StateAnonymous
	case s.Role == domain.RoleAdmin:
		return StateAdmin
	case s.Role == domain.RoleUser:
		return StateUser
	default:
		return StateUnresolved
	}
}
