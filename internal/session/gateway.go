package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wanderhub/travel-listings/internal/core/domain"
)

// Identity is the authenticated principal reported by the auth provider.
type Identity struct {
	UserID string
	Email  string
	Token  string
}

// AuthProvider is the external authentication service. Session must return
// a zero Identity with a nil error when nobody is signed in: "not logged in"
// is a valid empty result, not a failure.
type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (Identity, error)
	SignUp(ctx context.Context, name, email, password string) (Identity, error)
	SignOut(ctx context.Context, token string) error
	Session(ctx context.Context, token string) (Identity, error)
}

// Event describes a session lifecycle change.
type Event int

const (
	EventSignedIn Event = iota
	EventSignedOut
	EventRefreshed
)

// Gateway bridges the auth provider into session lifecycle events and owns
// the sign-in/sign-out ordering: a successful sign-out clears the store
// before any subscriber (such as a redirect handler) is notified, so gated
// UI never flashes stale privileged content after logout.
type Gateway struct {
	provider AuthProvider
	store    *Store
	resolver *Resolver
	log      zerolog.Logger

	mu      sync.Mutex
	token   string
	subs    map[int]func(Event)
	nextSub int
}

func NewGateway(provider AuthProvider, store *Store, resolver *Resolver, log zerolog.Logger) *Gateway {
	return &Gateway{
		provider: provider,
		store:    store,
		resolver: resolver,
		log:      log,
		subs:     make(map[int]func(Event)),
	}
}

// SignIn authenticates and updates the store: identity first, then a fresh
// role resolution that bypasses any previously cached role.
func (g *Gateway) SignIn(ctx context.Context, email, password string) error {
	id, err := g.provider.SignIn(ctx, email, password)
	if err != nil {
		return fmt.Errorf("%w: sign in: %v", domain.ErrAuthService, err)
	}

	g.setToken(id.Token)
	g.store.SetUserID(ctx, id.UserID)
	g.resolver.ResolveFresh(ctx, g.store)
	g.emit(EventSignedIn)
	return nil
}

// SignUp registers a new account and signs it in.
func (g *Gateway) SignUp(ctx context.Context, name, email, password string) error {
	id, err := g.provider.SignUp(ctx, name, email, password)
	if err != nil {
		return fmt.Errorf("%w: sign up: %v", domain.ErrAuthService, err)
	}

	g.setToken(id.Token)
	g.store.SetUserID(ctx, id.UserID)
	g.resolver.ResolveFresh(ctx, g.store)
	g.emit(EventSignedIn)
	return nil
}

// SignOut asks the provider to invalidate the session. When the provider
// call fails the store is left untouched: local state must not desynchronize
// from an operation that did not succeed server-side. On success the store
// is cleared before subscribers are notified.
func (g *Gateway) SignOut(ctx context.Context) error {
	if err := g.provider.SignOut(ctx, g.Token()); err != nil {
		return fmt.Errorf("%w: sign out: %v", domain.ErrAuthService, err)
	}

	g.setToken("")
	g.store.Clear(ctx)
	g.emit(EventSignedOut)
	return nil
}

// CurrentSession returns the active identity, or a zero Identity when
// nobody is signed in.
func (g *Gateway) CurrentSession(ctx context.Context) (Identity, error) {
	tok := g.Token()
	if tok == "" {
		return Identity{}, nil
	}
	return g.provider.Session(ctx, tok)
}

// Refresh re-validates the held token against the provider and emits a
// refresh event when the session is still alive.
func (g *Gateway) Refresh(ctx context.Context) error {
	id, err := g.CurrentSession(ctx)
	if err != nil {
		return fmt.Errorf("%w: refresh: %v", domain.ErrAuthService, err)
	}
	if id.UserID == "" {
		return nil
	}
	g.emit(EventRefreshed)
	return nil
}

// Subscribe registers a listener for session lifecycle events. The returned
// unsubscribe func must be invoked on consumer teardown, on every exit path,
// to avoid leaking listeners.
func (g *Gateway) Subscribe(fn func(Event)) func() {
	g.mu.Lock()
	id := g.nextSub
	g.nextSub++
	g.subs[id] = fn
	g.mu.Unlock()

	return func() {
		g.mu.Lock()
		delete(g.subs, id)
		g.mu.Unlock()
	}
}

// Token returns the bearer token of the current session, if any.
func (g *Gateway) Token() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.token
}

func (g *Gateway) setToken(tok string) {
	g.mu.Lock()
	g.token = tok
	g.mu.Unlock()
}

func (g *Gateway) emit(ev Event) {
	g.mu.Lock()
	fns := make([]func(Event), 0, len(g.subs))
	for _, fn := range g.subs {
		fns = append(fns, fn)
	}
	g.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
