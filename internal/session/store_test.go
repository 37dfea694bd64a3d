package session

import (
	"context"
	"errors"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/ndis-platform/admin-console/internal/domain"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func openStore(t *testing.T, storage Storage, key string) *Store {
	t.Helper()
	s, err := Open(context.Background(), storage, key, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestStore_SetTokenRoundTrip(t *testing.T) {
	s := openStore(t, NewMemoryStorage(), "default")
	ctx := context.Background()

	if s.IsAuthenticated() {
		t.Fatal("new store should be anonymous")
	}
	if err := s.SetToken(ctx, "abc"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	got, ok := s.Token()
	if !ok || got != "abc" {
		t.Fatalf("Token() = %q, %v; want abc, true", got, ok)
	}
	if s.State() != domain.SessionAuthenticated {
		t.Errorf("State = %s", s.State())
	}
}

func TestStore_RemoveToken(t *testing.T) {
	storage := NewMemoryStorage()
	s := openStore(t, storage, "default")
	ctx := context.Background()

	_ = s.SetToken(ctx, "abc")
	if err := s.RemoveToken(ctx); err != nil {
		t.Fatalf("RemoveToken: %v", err)
	}
	if s.IsAuthenticated() {
		t.Fatal("IsAuthenticated after RemoveToken")
	}
	if _, err := storage.Load(ctx, "default"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("persisted token not deleted: %v", err)
	}
}

func TestStore_EmptyTokenIsAbsent(t *testing.T) {
	s := openStore(t, NewMemoryStorage(), "default")
	ctx := context.Background()

	_ = s.SetToken(ctx, "abc")
	if err := s.SetToken(ctx, ""); err != nil {
		t.Fatalf("SetToken empty: %v", err)
	}
	if s.IsAuthenticated() {
		t.Fatal("empty token must not authenticate")
	}
}

func TestStore_RestoresPersistedToken(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := context.Background()
	first := openStore(t, storage, "ctx-1")
	_ = first.SetToken(ctx, "persisted")

	second := openStore(t, storage, "ctx-1")
	if tok, ok := second.Token(); !ok || tok != "persisted" {
		t.Fatalf("restored token = %q, %v", tok, ok)
	}

	other := openStore(t, storage, "ctx-2")
	if other.IsAuthenticated() {
		t.Fatal("contexts must not share tokens")
	}
}

func TestStore_ClearIf(t *testing.T) {
	s := openStore(t, NewMemoryStorage(), "default")
	ctx := context.Background()
	_ = s.SetToken(ctx, "new")

	cleared, err := s.ClearIf(ctx, "old")
	if err != nil || cleared {
		t.Fatalf("ClearIf(old) = %v, %v; want false, nil", cleared, err)
	}
	if tok, _ := s.Token(); tok != "new" {
		t.Fatalf("stale clear removed newer token, got %q", tok)
	}

	if cleared, _ := s.ClearIf(ctx, ""); cleared {
		t.Fatal("ClearIf with no token must not clear")
	}

	cleared, err = s.ClearIf(ctx, "new")
	if err != nil || !cleared {
		t.Fatalf("ClearIf(new) = %v, %v; want true, nil", cleared, err)
	}
	if s.IsAuthenticated() {
		t.Fatal("token should be cleared")
	}
}

type failingStorage struct{ err error }

func (f failingStorage) Load(context.Context, string) (string, error) { return "", f.err }
func (f failingStorage) Save(context.Context, string, string) error   { return f.err }
func (f failingStorage) Delete(context.Context, string) error         { return f.err }

func TestStore_StorageFailureKeepsMemoryCell(t *testing.T) {
	boom := errors.New("disk full")
	s, err := Open(context.Background(), failingStorage{err: boom}, "default", nil)
	if !errors.Is(err, boom) {
		t.Fatalf("Open err = %v, want %v", err, boom)
	}
	if s == nil || s.IsAuthenticated() {
		t.Fatal("failed restore should yield an anonymous store")
	}

	if err := s.SetToken(context.Background(), "abc"); !errors.Is(err, boom) {
		t.Fatalf("SetToken err = %v", err)
	}
	if tok, ok := s.Token(); !ok || tok != "abc" {
		t.Fatal("in-memory token should survive a persistence failure")
	}
	if err := s.RemoveToken(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("RemoveToken err = %v", err)
	}
	if s.IsAuthenticated() {
		t.Fatal("RemoveToken must clear memory even if storage fails")
	}
}

func TestStore_User(t *testing.T) {
	s := openStore(t, NewMemoryStorage(), "default")
	ctx := context.Background()

	if _, ok := s.User(); ok {
		t.Fatal("anonymous store returned identity")
	}

	_ = s.SetToken(ctx, signedToken(t, jwt.MapClaims{"sub": 7, "email": "admin@ndis.com", "role": "admin"}))
	user, ok := s.User()
	if !ok {
		t.Fatal("identity not decoded")
	}
	if user.Email != "admin@ndis.com" || user.Role != domain.RoleAdmin || user.ID != "7" {
		t.Errorf("identity = %+v", user)
	}

	_ = s.SetToken(ctx, "opaque-not-a-jwt")
	if _, ok := s.User(); ok {
		t.Fatal("undecodable token must yield absent identity")
	}
	if !s.IsAuthenticated() {
		t.Fatal("undecodable token still counts as present")
	}
}
