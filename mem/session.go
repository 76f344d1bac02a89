// Package mem provides in-process implementations of draft services for
// single-instance deployments. State lives for the lifetime of the
// process and is never expired automatically.
package mem

import (
	"context"
	"sync"
	"time"

	"draft"

	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ draft.SessionService = (*SessionService)(nil)

// SessionService implements draft.SessionService with an in-memory map.
// The map itself is guarded by a read-write mutex held only for lookup,
// insert, and delete; each session carries its own mutex so that
// read-modify-write updates to one id serialize without blocking
// operations on other ids.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry

	// Now returns the current time. Overridable in tests.
	Now func() time.Time
}

type sessionEntry struct {
	mu      sync.Mutex
	session draft.Session
}

// NewSessionService creates a new SessionService.
func NewSessionService() *SessionService {
	return &SessionService{
		sessions: make(map[string]*sessionEntry),
		Now:      time.Now,
	}
}

// CreateSession allocates a new session and returns its id.
// An empty id requests a generated one. Returns ECONFLICT if the id
// already exists; an existing session is never overwritten here.
func (s *SessionService) CreateSession(ctx context.Context, basePrompt, document, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(basePrompt, document, id)
}

// createLocked inserts a new session. Caller must hold s.mu.
func (s *SessionService) createLocked(basePrompt, document, id string) (string, error) {
	if id == "" {
		id = uuid.New().String()
	} else if _, ok := s.sessions[id]; ok {
		return "", draft.Errorf(draft.ECONFLICT, "session %q already exists", id)
	}

	now := s.Now().UTC()
	s.sessions[id] = &sessionEntry{
		session: draft.Session{
			ID:         id,
			BasePrompt: basePrompt,
			Latest:     document,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
	return id, nil
}

// FindSessionByID retrieves a copy of a session by id.
func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*draft.Session, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, draft.Errorf(draft.ENOTFOUND, "session %q not found", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return copySession(&e.session), nil
}

// UpdateSession replaces the session's latest document. With
// appendHistory, the superseded document is pushed onto history first.
func (s *SessionService) UpdateSession(ctx context.Context, id, document string, appendHistory bool) error {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return draft.Errorf(draft.ENOTFOUND, "session %q not found", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if appendHistory {
		e.session.History = append(e.session.History, e.session.Latest)
	}
	e.session.Latest = document
	e.session.UpdatedAt = s.Now().UTC()
	return nil
}

// GetOrCreateSession attaches to an existing session or creates one.
// Attaching replaces the latest document without growing history.
func (s *SessionService) GetOrCreateSession(ctx context.Context, basePrompt, document, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if e, ok := s.sessions[id]; ok {
			e.mu.Lock()
			e.session.Latest = document
			e.session.UpdatedAt = s.Now().UTC()
			e.mu.Unlock()
			return id, nil
		}
	}

	return s.createLocked(basePrompt, document, id)
}

// DeleteSession permanently removes a session.
func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return draft.Errorf(draft.ENOTFOUND, "session %q not found", id)
	}
	delete(s.sessions, id)
	return nil
}

// copySession returns a deep copy so callers never hold references to
// store-owned state.
func copySession(src *draft.Session) *draft.Session {
	out := *src
	if src.History != nil {
		out.History = make([]string, len(src.History))
		copy(out.History, src.History)
	}
	return &out
}
