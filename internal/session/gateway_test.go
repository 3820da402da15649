package session

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wanderhub/travel-listings/internal/core/domain"
)

type stubProvider struct {
	identity   Identity
	signInErr  error
	signOutErr error

	signOutCalls int
}

func (p *stubProvider) SignIn(context.Context, string, string) (Identity, error) {
	if p.signInErr != nil {
		return Identity{}, p.signInErr
	}
	return p.identity, nil
}

func (p *stubProvider) SignUp(context.Context, string, string, string) (Identity, error) {
	if p.signInErr != nil {
		return Identity{}, p.signInErr
	}
	return p.identity, nil
}

func (p *stubProvider) SignOut(context.Context, string) error {
	p.signOutCalls++
	return p.signOutErr
}

func (p *stubProvider) Session(context.Context, string) (Identity, error) {
	return p.identity, nil
}

func newTestGateway(provider *stubProvider, cache *memCache, source *stubSource) (*Gateway, *Store) {
	store := NewStore(cache, zerolog.Nop())
	resolver := NewResolver(cache, source, zerolog.Nop())
	return NewGateway(provider, store, resolver, zerolog.Nop()), store
}

func TestGateway_SignInResolvesFreshRole(t *testing.T) {
	cache := newMemCache()
	cache.roles["u1"] = "admin" // stale entry from whoever used this device before
	provider := &stubProvider{identity: Identity{UserID: "u1", Email: "a@example.com", Token: "tok"}}
	source := &stubSource{roles: map[string]string{"u1": "user"}}
	gw, store := newTestGateway(provider, cache, source)

	if err := gw.SignIn(context.Background(), "a@example.com", "pw"); err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	cur := store.Current()
	if cur.UserID != "u1" || cur.Role != "user" {
		t.Fatalf("unexpected session after sign-in: %+v", cur)
	}
	if gw.Token() != "tok" {
		t.Fatalf("token not retained: %q", gw.Token())
	}
}

func TestGateway_SignInFailureLeavesStore(t *testing.T) {
	provider := &stubProvider{signInErr: errors.New("bad credentials")}
	gw, store := newTestGateway(provider, newMemCache(), &stubSource{})

	err := gw.SignIn(context.Background(), "a@example.com", "pw")
	if !errors.Is(err, domain.ErrAuthService) {
		t.Fatalf("expected ErrAuthService, got %v", err)
	}
	if cur := store.Current(); cur != (Session{}) {
		t.Fatalf("failed sign-in mutated store: %+v", cur)
	}
}

func TestGateway_SignOutFailureLeavesStoreUntouched(t *testing.T) {
	cache := newMemCache()
	provider := &stubProvider{identity: Identity{UserID: "u1", Token: "tok"}}
	source := &stubSource{roles: map[string]string{"u1": "admin"}}
	gw, store := newTestGateway(provider, cache, source)
	ctx := context.Background()

	if err := gw.SignIn(ctx, "a@example.com", "pw"); err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	provider.signOutErr = errors.New("service unavailable")
	err := gw.SignOut(ctx)
	if !errors.Is(err, domain.ErrAuthService) {
		t.Fatalf("expected ErrAuthService, got %v", err)
	}

	cur := store.Current()
	if cur.UserID != "u1" || cur.Role != "admin" {
		t.Fatalf("failed sign-out mutated store: %+v", cur)
	}
	if gw.Token() != "tok" {
		t.Fatalf("failed sign-out dropped token")
	}
}

func TestGateway_SignOutClearsStoreBeforeNotifying(t *testing.T) {
	cache := newMemCache()
	provider := &stubProvider{identity: Identity{UserID: "u1", Token: "tok"}}
	source := &stubSource{roles: map[string]string{"u1": "admin"}}
	gw, store := newTestGateway(provider, cache, source)
	ctx := context.Background()

	if err := gw.SignIn(ctx, "a@example.com", "pw"); err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	var observed *Session
	defer gw.Subscribe(func(ev Event) {
		if ev == EventSignedOut {
			cur := store.Current()
			observed = &cur
		}
	})()

	if err := gw.SignOut(ctx); err != nil {
		t.Fatalf("sign out failed: %v", err)
	}

	if observed == nil {
		t.Fatalf("sign-out event not emitted")
	}
	if *observed != (Session{}) {
		t.Fatalf("subscriber saw a populated store after sign-out: %+v", *observed)
	}
	if provider.signOutCalls != 1 {
		t.Fatalf("expected one provider sign-out call, got %d", provider.signOutCalls)
	}
}

func TestGateway_UnsubscribeStopsEvents(t *testing.T) {
	provider := &stubProvider{identity: Identity{UserID: "u1", Token: "tok"}}
	gw, _ := newTestGateway(provider, newMemCache(), &stubSource{roles: map[string]string{"u1": "user"}})
	ctx := context.Background()

	events := 0
	unsubscribe := gw.Subscribe(func(Event) { events++ })

	if err := gw.SignIn(ctx, "a@example.com", "pw"); err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	unsubscribe()
	if err := gw.SignOut(ctx); err != nil {
		t.Fatalf("sign out failed: %v", err)
	}

	if events != 1 {
		t.Fatalf("expected 1 event before unsubscribe, got %d", events)
	}
}

func TestGateway_CurrentSessionWithoutToken(t *testing.T) {
	provider := &stubProvider{identity: Identity{UserID: "u1"}}
	gw, _ := newTestGateway(provider, newMemCache(), &stubSource{})

	id, err := gw.CurrentSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != (Identity{}) {
		t.Fatalf("expected zero identity without token, got %+v", id)
	}
}
