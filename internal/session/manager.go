package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"holidaze/internal/lib/logger/sl"
	"holidaze/internal/models"

	"github.com/google/uuid"
)

// Manager fronts a Store with an in-process cache that Watch keeps in sync.
type Manager struct {
	store Store
	ttl   time.Duration
	log   *slog.Logger
	now   func() time.Time

	mu    sync.RWMutex
	cache map[string]*Session
}

func NewManager(store Store, ttl time.Duration, log *slog.Logger) *Manager {
	return &Manager{
		store: store,
		ttl:   ttl,
		log:   log.With(slog.String("component", "session")),
		now:   time.Now,
		cache: make(map[string]*Session),
	}
}

// Create starts a session. It ends after the configured TTL or at the token's
// expiry, whichever comes first.
func (m *Manager) Create(ctx context.Context, token string, user models.Profile) (*Session, error) {
	const op = "session.Manager.Create"

	expiresAt := m.now().Add(m.ttl)
	if exp, ok := TokenExpiry(token); ok && exp.Before(expiresAt) {
		expiresAt = exp
	}

	s := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}

	if err := m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.remember(s)

	return clone(s), nil
}

func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	const op = "session.Manager.Get"

	if id == "" {
		return nil, ErrNotFound
	}

	m.mu.RLock()
	cached, ok := m.cache[id]
	m.mu.RUnlock()

	if ok && !cached.Expired(m.now()) {
		return clone(cached), nil
	}

	s, err := m.store.Get(ctx, id)
	if err != nil {
		m.forget(id)
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.Expired(m.now()) {
		m.forget(id)
		_ = m.store.Delete(ctx, id)
		return nil, ErrNotFound
	}

	m.remember(s)

	return clone(s), nil
}

// UpdateUser replaces the profile snapshot, e.g. after an avatar change.
func (m *Manager) UpdateUser(ctx context.Context, id string, user models.Profile) (*Session, error) {
	const op = "session.Manager.UpdateUser"

	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.User = user

	if err = m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.remember(s)

	return clone(s), nil
}

func (m *Manager) Destroy(ctx context.Context, id string) error {
	const op = "session.Manager.Destroy"

	m.forget(id)

	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Watch evicts cached sessions that changed elsewhere. It follows the store's change
// events when it has them and re-checks the store every interval otherwise. Blocks until
// ctx is done.
func (m *Manager) Watch(ctx context.Context, interval time.Duration) {
	if sub, ok := m.store.(Subscriber); ok {
		events, err := sub.Subscribe(ctx)
		if err == nil {
			m.log.Info("watching session events")

			for ev := range events {
				m.log.Debug("session changed", slog.String("kind", string(ev.Kind)))
				m.forget(ev.ID)
			}

			if ctx.Err() != nil {
				return
			}

			m.log.Warn("session subscription closed, falling back to polling")
		} else {
			m.log.Warn("session subscription unavailable, falling back to polling", sl.Err(err))
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (m *Manager) refresh(ctx context.Context) {
	m.mu.RLock()
	ids := make([]string, 0, len(m.cache))
	for id := range m.cache {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	for _, id := range ids {
		s, err := m.store.Get(ctx, id)
		switch {
		case errors.Is(err, ErrNotFound):
			m.forget(id)
		case err != nil:
			m.log.Warn("failed to refresh session", sl.Err(err))
		case s.Expired(m.now()):
			m.forget(id)
		default:
			m.remember(s)
		}
	}
}

func (m *Manager) remember(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cache[s.ID] = clone(s)
}

func (m *Manager) forget(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.cache, id)
}

func clone(s *Session) *Session {
	cp := *s
	return &cp
}
