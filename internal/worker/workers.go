package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ndis-platform/admin-console/internal/service"
)

// StartNotificationWorker registers notification handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}

// Sweeper is the part of the workspace registry the janitor needs.
type Sweeper interface {
	Sweep(maxIdle time.Duration) int
}

// RunWorkspaceJanitor evicts idle workspaces every interval until ctx is done.
func RunWorkspaceJanitor(ctx context.Context, workspaces Sweeper, interval, maxIdle time.Duration, logger *zap.Logger) {
	if workspaces == nil || interval <= 0 || maxIdle <= 0 {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := workspaces.Sweep(maxIdle); n > 0 {
				logger.Debug("evicted idle workspaces", zap.Int("count", n))
			}
		}
	}
}
