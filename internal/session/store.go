package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// RoleCache is the durable side of the store: the last-known role survives a
// restart so the navigation gate can show a provisional menu before the
// resolver confirms the role from the backing store.
//
// Get returns ("", nil) when no role is cached for the user; absence is not
// an error.
type RoleCache interface {
	Get(ctx context.Context, userID string) (string, error)
	Set(ctx context.Context, userID, role string) error
	Del(ctx context.Context, userID string) error
}

// Store holds the in-memory source of truth for the current session and
// mirrors the role into the RoleCache. It never returns errors: cache
// failures are logged and the store degrades to the in-memory value.
type Store struct {
	mu    sync.Mutex
	cur   Session
	cache RoleCache
	log   zerolog.Logger

	subs    map[int]func(Session)
	nextSub int
}

func NewStore(cache RoleCache, log zerolog.Logger) *Store {
	return &Store{cache: cache, log: log, subs: make(map[int]func(Session))}
}

// Bootstrap seeds the store at process start. A cached role, when present,
// is used as a provisional value until the resolver confirms or overwrites
// it; the staleness window is bounded by the first resolution.
func (s *Store) Bootstrap(ctx context.Context, userID string) {
	role := ""
	if userID != "" {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.log.Debug().Err(err).Msg("role cache read failed during bootstrap")
		} else {
			role = cached
		}
	}

	s.mu.Lock()
	s.cur = Session{UserID: userID, Role: role}
	snapshot := s.cur
	s.mu.Unlock()

	s.notify(snapshot)
}

// SetUserID replaces the current identifier. Gateway-only.
func (s *Store) SetUserID(ctx context.Context, id string) {
	s.mu.Lock()
	s.cur.UserID = id
	snapshot := s.cur
	s.mu.Unlock()

	s.notify(snapshot)
}

// SetRole replaces the current role and persists it. An empty role removes
// the persisted value. Gateway- and Resolver-only.
func (s *Store) SetRole(ctx context.Context, role string) {
	s.mu.Lock()
	s.cur.Role = role
	snapshot := s.cur
	s.mu.Unlock()

	if snapshot.UserID != "" {
		var err error
		if role == "" {
			err = s.cache.Del(ctx, snapshot.UserID)
		} else {
			err = s.cache.Set(ctx, snapshot.UserID, role)
		}
		if err != nil {
			s.log.Warn().Err(err).Msg("role cache write failed")
		}
	}

	s.notify(snapshot)
}

// Clear resets the session and removes the persisted role. Idempotent:
// clearing an already-empty store changes nothing and notifies nobody.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	if s.cur == (Session{}) {
		s.mu.Unlock()
		return
	}
	userID := s.cur.UserID
	s.cur = Session{}
	s.mu.Unlock()

	if userID != "" {
		if err := s.cache.Del(ctx, userID); err != nil {
			s.log.Warn().Err(err).Msg("failed to remove persisted role")
		}
	}

	s.notify(Session{})
}

// Current returns an immutable snapshot.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Subscribe registers fn to receive a snapshot after every mutation. The
// returned func unregisters it and must be called on consumer teardown.
func (s *Store) Subscribe(fn func(Session)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify(snapshot Session) {
	s.mu.Lock()
	fns := make([]func(Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
