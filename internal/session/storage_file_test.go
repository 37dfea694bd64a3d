package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	fs, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	ctx := context.Background()

	if _, err := fs.Load(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load missing = %v, want ErrNotFound", err)
	}
	if err := fs.Save(ctx, "abc", "tok-1"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(filepath.Join(dir, "abc.token"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("token file perm = %o, want 600", perm)
	}

	got, err := fs.Load(ctx, "abc")
	if err != nil || got != "tok-1" {
		t.Fatalf("Load = %q, %v", got, err)
	}
	if err := fs.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := fs.Delete(ctx, "abc"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestFileStorage_SurvivesStoreRestart(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	ctx := context.Background()
	s := openStore(t, fs, "browser-1")
	if err := s.SetToken(ctx, "abc"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	reopened := openStore(t, fs, "browser-1")
	if tok, ok := reopened.Token(); !ok || tok != "abc" {
		t.Fatalf("reopened token = %q, %v", tok, ok)
	}
}

func TestFileStorage_RejectsPathKeys(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	for _, key := range []string{"../escape", "", "a/b", "dot.dot"} {
		if err := fs.Save(context.Background(), key, "x"); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Save(%q) = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestFileStorage_Ping(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	if err := fs.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := os.RemoveAll(dir); err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}
	if err := fs.Ping(context.Background()); err == nil {
		t.Fatal("Ping should fail once the directory is gone")
	}
}
