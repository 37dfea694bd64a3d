package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ndis-platform/admin-console/internal/domain"
)

// Store holds the bearer token of one browser context.
type Store struct {
	key     string
	storage Storage
	logger  *zap.Logger

	mu    sync.RWMutex
	token string
}

// Open builds a store for key and restores any token already persisted for it.
// A failed restore leaves the store anonymous and is returned alongside it.
func Open(ctx context.Context, storage Storage, key string, logger *zap.Logger) (*Store, error) {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{key: key, storage: storage, logger: logger.With(zap.String("session", shortKey(key)))}

	tok, err := storage.Load(ctx, key)
	switch {
	case err == nil:
		s.token = tok
		s.logger.Debug("session restored")
	case errors.Is(err, ErrNotFound):
	default:
		return s, fmt.Errorf("restore session: %w", err)
	}
	return s, nil
}

// Key returns the browser context key.
func (s *Store) Key() string {
	return s.key
}

// SetToken replaces the current token. An empty token clears the session.
func (s *Store) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.RemoveToken(ctx)
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.storage.Save(ctx, s.key, token); err != nil {
		s.logger.Warn("persist token failed", zap.Error(err))
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// Token returns the current token and whether one is present.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// RemoveToken clears the session.
func (s *Store) RemoveToken(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return s.delete(ctx)
}

// ClearIf clears the session only while it still holds token, so a late
// response for an old token cannot end a newer session. It reports whether
// this call removed the token; a request sent without one clears nothing.
func (s *Store) ClearIf(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	s.mu.Lock()
	if s.token != token {
		s.mu.Unlock()
		return false, nil
	}
	s.token = ""
	s.mu.Unlock()
	return true, s.delete(ctx)
}

func (s *Store) delete(ctx context.Context) error {
	if err := s.storage.Delete(ctx, s.key); err != nil {
		s.logger.Warn("delete persisted token failed", zap.Error(err))
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a token is present. Expiry is not checked.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// State returns the session state implied by token presence.
func (s *Store) State() domain.SessionState {
	if s.IsAuthenticated() {
		return domain.SessionAuthenticated
	}
	return domain.SessionAnonymous
}

// User decodes the identity carried by the current token. It reports false
// when anonymous or when the token cannot be decoded.
func (s *Store) User() (*domain.Identity, bool) {
	tok, ok := s.Token()
	if !ok {
		return nil, false
	}
	return DecodeIdentity(tok)
}

func shortKey(key string) string {
	if len(key) > 8 {
		return key[:8]
	}
	return key
}
