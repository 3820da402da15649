package session

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type stubSource struct {
	roles map[string]string
	err   error
	calls int
}

func (s *stubSource) RoleByID(_ context.Context, userID string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.roles[userID], nil
}

func TestResolver_CachedRoleSkipsLookup(t *testing.T) {
	cache := newMemCache()
	cache.roles["u1"] = "admin"
	source := &stubSource{}
	r := NewResolver(cache, source, zerolog.Nop())

	if role := r.Resolve(context.Background(), "u1"); role != "admin" {
		t.Fatalf("expected admin, got %q", role)
	}
	if source.calls != 0 {
		t.Fatalf("cache hit still performed %d lookups", source.calls)
	}
}

func TestResolver_MissLooksUpAndWritesBack(t *testing.T) {
	cache := newMemCache()
	source := &stubSource{roles: map[string]string{"u1": "user"}}
	r := NewResolver(cache, source, zerolog.Nop())

	if role := r.Resolve(context.Background(), "u1"); role != "user" {
		t.Fatalf("expected user, got %q", role)
	}
	if source.calls != 1 {
		t.Fatalf("expected 1 lookup, got %d", source.calls)
	}
	if cache.roles["u1"] != "user" {
		t.Fatalf("resolved role not written back to cache")
	}
}

func TestResolver_LookupFailureYieldsEmptyRole(t *testing.T) {
	source := &stubSource{err: errors.New("db down")}
	r := NewResolver(newMemCache(), source, zerolog.Nop())

	if role := r.Resolve(context.Background(), "u1"); role != "" {
		t.Fatalf("failed lookup produced role %q", role)
	}
}

func TestResolver_EmptyUserIDNoLookup(t *testing.T) {
	cache := newMemCache()
	source := &stubSource{}
	r := NewResolver(cache, source, zerolog.Nop())

	if role := r.Resolve(context.Background(), ""); role != "" {
		t.Fatalf("expected empty role, got %q", role)
	}
	if cache.gets != 0 || source.calls != 0 {
		t.Fatalf("anonymous resolution touched cache or source")
	}
}

func TestResolver_ResolveIntoTrustsProvisionalRole(t *testing.T) {
	cache := newMemCache()
	cache.roles["u1"] = "admin"
	source := &stubSource{roles: map[string]string{"u1": "user"}}
	store := NewStore(cache, zerolog.Nop())
	store.Bootstrap(context.Background(), "u1")

	r := NewResolver(cache, source, zerolog.Nop())
	r.ResolveInto(context.Background(), store)

	if source.calls != 0 {
		t.Fatalf("provisional role triggered %d lookups", source.calls)
	}
	if cur := store.Current(); cur.Role != "admin" {
		t.Fatalf("provisional role overwritten: %+v", cur)
	}
}

func TestResolver_ResolveFreshIgnoresStaleCache(t *testing.T) {
	cache := newMemCache()
	cache.roles["u1"] = "admin" // left behind by a previous session
	source := &stubSource{roles: map[string]string{"u1": "user"}}
	store := NewStore(cache, zerolog.Nop())
	ctx := context.Background()

	store.SetUserID(ctx, "u1")

	r := NewResolver(cache, source, zerolog.Nop())
	r.ResolveFresh(ctx, store)

	if cur := store.Current(); cur.Role != "user" {
		t.Fatalf("stale cached role survived sign-in: %+v", cur)
	}
	if source.calls != 1 {
		t.Fatalf("expected a fresh lookup, got %d", source.calls)
	}
}
