package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httptransport "github.com/ndis-platform/admin-console/internal/api/http"
	"github.com/ndis-platform/admin-console/internal/api/http/handlers"
	"github.com/ndis-platform/admin-console/internal/auth"
	"github.com/ndis-platform/admin-console/internal/client"
	"github.com/ndis-platform/admin-console/internal/config"
	"github.com/ndis-platform/admin-console/internal/events"
	"github.com/ndis-platform/admin-console/internal/observability"
	"github.com/ndis-platform/admin-console/internal/persistence"
	"github.com/ndis-platform/admin-console/internal/service"
	"github.com/ndis-platform/admin-console/internal/session"
	"github.com/ndis-platform/admin-console/internal/worker"
)

const janitorInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storage, checks, closeStorage := openSessionStorage(ctx, cfg, logger)
	defer closeStorage()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	notifications := service.NewNotificationService(dispatcher, logger.Named("notifications"))
	worker.StartNotificationWorker(notifications)

	workspaces := service.NewWorkspaces(service.WorkspaceConfig{
		BaseURL:    cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout(),
		Storage:    storage,
		Dispatcher: dispatcher,
		Logger:     logger,
		Metrics:    metrics,
		RequestInterceptors: []client.RequestInterceptor{
			client.RequestIDFromContext(httptransport.RequestIDKey),
			client.RequestID(),
		},
	})
	go worker.RunWorkspaceJanitor(ctx, workspaces, janitorInterval, cfg.Session.IdleTimeout(), logger)

	app := httptransport.NewApp(cfg.App.Name)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	pages := handlers.NewPages(notifications)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, checks),
		Auth:         handlers.NewAuthHandler(pages),
		Dashboard:    handlers.NewDashboardHandler(pages, logger),
		Staff:        handlers.NewStaffHandler(pages),
		Participants: handlers.NewParticipantsHandler(pages),
		Context: auth.NewContextMiddleware(workspaces, auth.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		}, logger),
		Gatherer: metrics.Registry(),
	})

	go func() {
		logger.Info("console listening",
			zap.String("addr", cfg.App.Addr()),
			zap.String("api", cfg.API.BaseURL),
			zap.String("session_store", cfg.Session.Store))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

// openSessionStorage builds the configured token storage and its readiness checks.
func openSessionStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (session.Storage, map[string]handlers.Pinger, func()) {
	switch cfg.Session.Store {
	case config.SessionStoreFile:
		fs, err := session.NewFileStorage(cfg.Session.Dir)
		if err != nil {
			logger.Fatal("failed to open session dir", zap.String("dir", cfg.Session.Dir), zap.Error(err))
		}
		return fs, map[string]handlers.Pinger{"session_dir": fs}, func() {}
	case config.SessionStoreRedis:
		redis := persistence.NewRedis(ctx, cfg.Redis, logger)
		return redis.SessionStorage(cfg.Redis.KeyPrefix, cfg.Session.TTL()), map[string]handlers.Pinger{"redis": redis}, redis.Close
	default:
		return session.NewMemoryStorage(), nil, func() {}
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
