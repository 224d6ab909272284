// Package memory keeps dashboard sessions in process memory.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/graviti/shiptracker/internal/core/domain"
)

type entry struct {
	session   *domain.Session
	expiresAt time.Time
}

// SessionStore is a mutex-guarded map of sessions. Get and Save copy the
// session so callers never share mutable state.
type SessionStore struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time
	m   map[string]entry
}

// NewSessionStore creates a store whose entries expire ttl after their last
// save. A zero ttl keeps sessions until they are deleted.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{ttl: ttl, now: time.Now, m: make(map[string]entry)}
}

func (s *SessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.m[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		delete(s.m, id)
		return nil, domain.ErrSessionNotFound
	}
	return e.session.Clone(), nil
}

func (s *SessionStore) Save(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{session: session.Clone()}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.m[session.ID] = e
	s.sweep()
	return nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
	return nil
}

// Len reports the number of stored sessions, expired ones included.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

// sweep drops expired sessions. Caller holds mu.
func (s *SessionStore) sweep() {
	now := s.now()
	for id, e := range s.m {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(s.m, id)
		}
	}
}
