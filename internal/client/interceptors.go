package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ndis-platform/admin-console/internal/events"
)

// RequestInterceptor runs on every outgoing request before dispatch.
type RequestInterceptor func(req *http.Request) error

// ResponseInterceptor runs on every received response, successful or not.
// Returning an error replaces the call's result with that error.
type ResponseInterceptor func(ctx context.Context, resp *Response) error

// Response is what response interceptors see.
type Response struct {
	Request    *http.Request
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration
}

const bearerPrefix = "Bearer "

// bearerAuth attaches the session token, or strips the header when anonymous.
// The token is read per request so a logout between calls is always seen.
func (c *Client) bearerAuth(req *http.Request) error {
	if tok, ok := c.session.Token(); ok {
		req.Header.Set("Authorization", bearerPrefix+tok)
	} else {
		req.Header.Del("Authorization")
	}
	return nil
}

// sentToken recovers the token a request was dispatched with.
func sentToken(req *http.Request) string {
	h := req.Header.Get("Authorization")
	if !strings.HasPrefix(h, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(h, bearerPrefix)
}

// expireOnUnauthorized clears the session and announces the expiry on a 401.
// The 401 still reaches the caller as an APIError.
func (c *Client) expireOnUnauthorized(ctx context.Context, resp *Response) error {
	if resp.StatusCode != http.StatusUnauthorized {
		return nil
	}

	cleared, err := c.session.ClearIf(ctx, sentToken(resp.Request))
	if err != nil {
		c.logger.Warn("clear session after 401", zap.Error(err))
	}
	c.metrics.RecordSessionExpired()
	c.logger.Warn("session expired",
		zap.String("method", resp.Request.Method),
		zap.String("path", resp.Request.URL.Path),
		zap.Bool("cleared", cleared))

	if c.dispatcher == nil {
		return nil
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventSessionExpired,
		SessionID: c.session.Key(),
		Timestamp: time.Now().UTC(),
		Payload: events.SessionExpiredPayload{
			Method:  resp.Request.Method,
			Path:    resp.Request.URL.Path,
			Cleared: cleared,
		},
	}
	if err := c.dispatcher.Publish(ctx, event); err != nil {
		c.logger.Warn("session expired handler failed", zap.Error(err))
	}
	return nil
}

// RequestID tags requests lacking an X-Request-ID with a fresh UUID.
func RequestID() RequestInterceptor {
	return func(req *http.Request) error {
		if req.Header.Get("X-Request-ID") == "" {
			req.Header.Set("X-Request-ID", uuid.NewString())
		}
		return nil
	}
}

// RequestIDFromContext forwards an id stored under key in the request context.
func RequestIDFromContext(key any) RequestInterceptor {
	return func(req *http.Request) error {
		if id, ok := req.Context().Value(key).(string); ok && id != "" {
			req.Header.Set("X-Request-ID", id)
		}
		return nil
	}
}
