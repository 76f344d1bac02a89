// Package mock provides function-field mock implementations of draft
// interfaces for testing.
package mock

import (
	"context"

	"draft"
)

var _ draft.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of draft.SessionService.
type SessionService struct {
	CreateSessionFn      func(ctx context.Context, basePrompt, document, id string) (string, error)
	FindSessionByIDFn    func(ctx context.Context, id string) (*draft.Session, error)
	UpdateSessionFn      func(ctx context.Context, id, document string, appendHistory bool) error
	GetOrCreateSessionFn func(ctx context.Context, basePrompt, document, id string) (string, error)
	DeleteSessionFn      func(ctx context.Context, id string) error
}

func (s *SessionService) CreateSession(ctx context.Context, basePrompt, document, id string) (string, error) {
	return s.CreateSessionFn(ctx, basePrompt, document, id)
}

func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*draft.Session, error) {
	return s.FindSessionByIDFn(ctx, id)
}

func (s *SessionService) UpdateSession(ctx context.Context, id, document string, appendHistory bool) error {
	return s.UpdateSessionFn(ctx, id, document, appendHistory)
}

func (s *SessionService) GetOrCreateSession(ctx context.Context, basePrompt, document, id string) (string, error) {
	return s.GetOrCreateSessionFn(ctx, basePrompt, document, id)
}

func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	return s.DeleteSessionFn(ctx, id)
}
