package draft

import (
	"context"
	"time"
)

// Session records the edit history of one generated document across
// requests. History is append-only and holds only document states that
// were once Latest, never the newest one.
type Session struct {
	ID         string    `json:"id"`
	BasePrompt string    `json:"basePrompt"`
	Latest     string    `json:"latest"`
	History    []string  `json:"history"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SessionService manages document edit sessions. Implementations own the
// stored sessions for their lifetime; callers receive ids and copies,
// never references to stored state.
//
// Mutations to the same session id are serialized (atomic
// read-modify-write per id); operations on distinct ids do not block
// each other.
type SessionService interface {
	// CreateSession allocates a new session and returns its id.
	// An empty id requests a generated one; a caller-supplied id is used
	// verbatim. Returns ECONFLICT if the id already exists.
	CreateSession(ctx context.Context, basePrompt, document, id string) (string, error)

	// FindSessionByID retrieves a session by id.
	// Returns ENOTFOUND if the session does not exist.
	FindSessionByID(ctx context.Context, id string) (*Session, error)

	// UpdateSession replaces the session's latest document. With
	// appendHistory, the current latest document is pushed onto history
	// first; otherwise history is left untouched. Both paths bump
	// UpdatedAt. Returns ENOTFOUND if the session does not exist.
	UpdateSession(ctx context.Context, id, document string, appendHistory bool) error

	// GetOrCreateSession attaches to an existing session or creates one.
	// When id names an existing session, its latest document is replaced
	// without growing history and the id is returned unchanged; otherwise
	// a session is created as by CreateSession.
	GetOrCreateSession(ctx context.Context, basePrompt, document, id string) (string, error)

	// DeleteSession permanently removes a session.
	// Returns ENOTFOUND if the session does not exist.
	DeleteSession(ctx context.Context, id string) error
}
