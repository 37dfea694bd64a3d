package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ndis-platform/admin-console/internal/client"
	"github.com/ndis-platform/admin-console/internal/events"
	"github.com/ndis-platform/admin-console/internal/observability"
	"github.com/ndis-platform/admin-console/internal/session"
)

// ErrEmptyWorkspaceID is returned for a blank browser context id.
var ErrEmptyWorkspaceID = errors.New("workspace id required")

// Workspace bundles the session, API client and services of one browser context.
type Workspace struct {
	ID           string
	Session      *session.Store
	API          *client.Client
	Auth         *AuthService
	Staff        *StaffService
	Participants *ParticipantService

	lastSeen time.Time
}

// WorkspaceConfig describes how workspaces are built.
type WorkspaceConfig struct {
	BaseURL             string
	HTTPClient          *http.Client
	Timeout             time.Duration
	Storage             session.Storage
	Dispatcher          events.Dispatcher
	Logger              *zap.Logger
	Metrics             *observability.Metrics
	RequestInterceptors []client.RequestInterceptor
}

// Workspaces lazily creates and caches workspaces by browser context id.
type Workspaces struct {
	cfg WorkspaceConfig
	now func() time.Time

	mu    sync.Mutex
	items map[string]*Workspace
}

// NewWorkspaces constructs the registry.
func NewWorkspaces(cfg WorkspaceConfig) *Workspaces {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Storage == nil {
		cfg.Storage = session.NewMemoryStorage()
	}
	return &Workspaces{cfg: cfg, now: time.Now, items: make(map[string]*Workspace)}
}

// Get returns the workspace for id, restoring a persisted token on first use.
// The restore runs without holding the registry lock; if two requests race to
// create the same workspace, the first one stored wins.
func (w *Workspaces) Get(ctx context.Context, id string) (*Workspace, error) {
	if id == "" {
		return nil, ErrEmptyWorkspaceID
	}

	if ws, ok := w.cached(id); ok {
		return ws, nil
	}

	ws, err := w.build(ctx, id)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if existing, ok := w.items[id]; ok {
		existing.lastSeen = w.now()
		return existing, nil
	}
	ws.lastSeen = w.now()
	w.items[id] = ws
	return ws, nil
}

func (w *Workspaces) cached(id string) (*Workspace, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	ws, ok := w.items[id]
	if ok {
		ws.lastSeen = w.now()
	}
	return ws, ok
}

func (w *Workspaces) build(ctx context.Context, id string) (*Workspace, error) {
	store, err := session.Open(ctx, w.cfg.Storage, id, w.cfg.Logger)
	if errors.Is(err, session.ErrInvalidKey) {
		return nil, err
	}
	if err != nil {
		w.cfg.Logger.Warn("session restore failed; starting anonymous", zap.Error(err))
	}

	api, err := client.New(w.cfg.BaseURL, store, client.Options{
		HTTPClient: w.cfg.HTTPClient,
		Timeout:    w.cfg.Timeout,
		Logger:     w.cfg.Logger,
		Metrics:    w.cfg.Metrics,
		Dispatcher: w.cfg.Dispatcher,
	})
	if err != nil {
		return nil, err
	}
	for _, intercept := range w.cfg.RequestInterceptors {
		api.UseRequest(intercept)
	}

	return &Workspace{
		ID:      id,
		Session: store,
		API:     api,
		Auth: NewAuthService(AuthDependencies{
			API:        api,
			Session:    store,
			Dispatcher: w.cfg.Dispatcher,
			Logger:     w.cfg.Logger,
		}),
		Staff:        NewStaffService(api),
		Participants: NewParticipantService(api),
	}, nil
}

// Sweep drops workspaces idle for longer than maxIdle. Tokens in durable
// storage stay and are restored if the browser returns; with memory storage
// the token is dropped along with the workspace.
func (w *Workspaces) Sweep(maxIdle time.Duration) int {
	w.mu.Lock()
	cutoff := w.now().Add(-maxIdle)
	var evicted []string
	for id, ws := range w.items {
		if ws.lastSeen.Before(cutoff) {
			delete(w.items, id)
			evicted = append(evicted, id)
		}
	}
	w.mu.Unlock()

	if mem, ok := w.cfg.Storage.(*session.MemoryStorage); ok {
		for _, id := range evicted {
			_ = mem.Delete(context.Background(), id)
		}
	}
	return len(evicted)
}

// Len returns the number of cached workspaces.
func (w *Workspaces) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}
