package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ndis-platform/admin-console/internal/events"
)

// Notice levels.
const (
	NoticeInfo    = "info"
	NoticeWarning = "warning"
)

// Notice is a one-shot message shown on the next page a browser context loads.
type Notice struct {
	Level string
	Text  string
}

const sessionExpiredText = "Your session has expired. Please log in again."

// NotificationService turns session events into log lines and per-context notices.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu      sync.Mutex
	notices map[string][]Notice
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		notices:    make(map[string][]Notice),
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventLoggedIn, n.handleLoggedIn)
	n.dispatcher.Subscribe(events.EventLoggedOut, n.handleLoggedOut)
	n.dispatcher.Subscribe(events.EventSessionExpired, n.handleSessionExpired)
}

func (n *NotificationService) handleLoggedIn(_ context.Context, event events.Event) error {
	fields := []zap.Field{zap.String("session", event.SessionID)}
	if p, ok := event.Payload.(events.LoggedInPayload); ok && p.User != nil {
		fields = append(fields, zap.String("email", p.User.Email), zap.String("role", string(p.User.Role)))
	}
	n.logger.Info("LoggedIn", fields...)
	return nil
}

func (n *NotificationService) handleLoggedOut(_ context.Context, event events.Event) error {
	n.logger.Info("LoggedOut", zap.String("session", event.SessionID))
	n.Push(event.SessionID, Notice{Level: NoticeInfo, Text: "You have been logged out."})
	return nil
}

func (n *NotificationService) handleSessionExpired(_ context.Context, event events.Event) error {
	p, _ := event.Payload.(events.SessionExpiredPayload)
	n.logger.Info("SessionExpired",
		zap.String("session", event.SessionID),
		zap.String("method", p.Method),
		zap.String("path", p.Path),
		zap.Bool("cleared", p.Cleared))
	if p.Cleared {
		n.Push(event.SessionID, Notice{Level: NoticeWarning, Text: sessionExpiredText})
	}
	return nil
}

// Push queues a notice for sessionID, dropping an exact duplicate of the last one.
func (n *NotificationService) Push(sessionID string, notice Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	queue := n.notices[sessionID]
	if len(queue) > 0 && queue[len(queue)-1] == notice {
		return
	}
	n.notices[sessionID] = append(queue, notice)
}

// Pop returns and clears the notices queued for sessionID.
func (n *NotificationService) Pop(sessionID string) []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	queue := n.notices[sessionID]
	delete(n.notices, sessionID)
	return queue
}
