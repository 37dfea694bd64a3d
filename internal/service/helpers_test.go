package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ndis-platform/admin-console/internal/events"
	"github.com/ndis-platform/admin-console/internal/session"
)

type backend struct {
	mu       sync.Mutex
	auth     map[string][]string
	calls    map[string]int
	handlers map[string]http.HandlerFunc
	srv      *httptest.Server
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{auth: map[string][]string{}, calls: map[string]int{}, handlers: map[string]http.HandlerFunc{}}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.auth[key] = r.Header.Values("Authorization")
		b.calls[key]++
		h := b.handlers[key]
		b.mu.Unlock()
		if h == nil {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *backend) on(key string, h http.HandlerFunc) {
	b.mu.Lock()
	b.handlers[key] = h
	b.mu.Unlock()
}

func (b *backend) authFor(key string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.auth[key]
}

func (b *backend) callsTo(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[key]
}

func respond(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
}

type fixture struct {
	backend       *backend
	dispatcher    events.Dispatcher
	notifications *NotificationService
	workspaces    *Workspaces
	storage       *session.MemoryStorage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		backend:    newBackend(t),
		dispatcher: events.NewInMemoryDispatcher(),
		storage:    session.NewMemoryStorage(),
	}
	f.notifications = NewNotificationService(f.dispatcher, nil)
	f.notifications.RegisterHandlers()
	f.workspaces = NewWorkspaces(WorkspaceConfig{
		BaseURL:    f.backend.srv.URL + "/api",
		Storage:    f.storage,
		Dispatcher: f.dispatcher,
	})
	return f
}

func (f *fixture) workspace(t *testing.T, id string) *Workspace {
	t.Helper()
	ws, err := f.workspaces.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Workspaces.Get: %v", err)
	}
	return ws
}
