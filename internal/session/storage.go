package session

import (
	"context"
	"regexp"
	"sync"
)

// Storage persists tokens keyed by browser context.
type Storage interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, token string) error
	Delete(ctx context.Context, key string) error
}

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

func validKey(key string) error {
	if !keyPattern.MatchString(key) {
		return ErrInvalidKey
	}
	return nil
}

// MemoryStorage keeps tokens for the lifetime of the process.
type MemoryStorage struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{tokens: make(map[string]string)}
}

func (m *MemoryStorage) Load(_ context.Context, key string) (string, error) {
	if err := validKey(key); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	tok, ok := m.tokens[key]
	if !ok {
		return "", ErrNotFound
	}
	return tok, nil
}

func (m *MemoryStorage) Save(_ context.Context, key, token string) error {
	if err := validKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	m.tokens[key] = token
	m.mu.Unlock()
	return nil
}

func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.tokens, key)
	m.mu.Unlock()
	return nil
}
