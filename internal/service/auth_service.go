package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ndis-platform/admin-console/internal/api/dto"
	"github.com/ndis-platform/admin-console/internal/domain"
	"github.com/ndis-platform/admin-console/internal/events"
	"github.com/ndis-platform/admin-console/internal/session"
	"github.com/ndis-platform/admin-console/internal/validation"
)

// ErrMissingToken is returned when a login succeeds without a token in the response.
var ErrMissingToken = errors.New("login response carried no token")

// AuthService drives the anonymous/authenticated lifecycle of one session.
type AuthService struct {
	api        AuthAPI
	session    *session.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	API        AuthAPI
	Session    *session.Store
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		api:        deps.API,
		session:    deps.Session,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Login exchanges credentials for a token and stores it. The identity comes
// from the response's user object, falling back to the token claims.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	req := dto.LoginRequest{Email: strings.TrimSpace(email), Password: password}
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	resp, err := s.api.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, ErrMissingToken
	}
	if err := s.session.SetToken(ctx, resp.Token); err != nil {
		// The in-memory session is live; only persistence failed.
		s.logger.Warn("token not persisted", zap.Error(err))
	}

	identity := resp.User.Identity()
	if identity.Email == "" {
		if decoded, ok := session.DecodeIdentity(resp.Token); ok {
			identity = decoded
		}
	}

	s.publish(ctx, events.EventLoggedIn, events.LoggedInPayload{User: identity})
	return identity, nil
}

// Register creates an account. Role defaults to staff.
func (s *AuthService) Register(ctx context.Context, email, password string, role domain.Role) (*dto.MessageResponse, error) {
	if role == "" {
		role = domain.RoleStaff
	}
	req := dto.RegisterRequest{Email: strings.TrimSpace(email), Password: password, Role: role}
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}
	return s.api.Register(ctx, req)
}

// Logout clears the session. Calls already in flight are left to finish.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.session.RemoveToken(ctx)
	s.publish(ctx, events.EventLoggedOut, nil)
	return err
}

// CurrentUser returns the identity projected from the session token.
func (s *AuthService) CurrentUser() (*domain.Identity, bool) {
	return s.session.User()
}

// State reports whether the session is anonymous or authenticated.
func (s *AuthService) State() domain.SessionState {
	return s.session.State()
}

func (s *AuthService) publish(ctx context.Context, t events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      t,
		SessionID: s.session.Key(),
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		s.logger.Warn("event handler failed", zap.String("event", string(t)), zap.Error(err))
	}
}
