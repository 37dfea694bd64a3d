package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ndis-platform/admin-console/internal/events"
	"github.com/ndis-platform/admin-console/internal/observability"
	"github.com/ndis-platform/admin-console/internal/session"
)

const maxResponseBytes = 4 << 20

// ErrNilSession is returned by New when no session store is supplied.
var ErrNilSession = errors.New("client: session store required")

// Options tunes a Client. Zero values are usable.
type Options struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *zap.Logger
	Metrics    *observability.Metrics
	Dispatcher events.Dispatcher
}

// Client is the single gateway for calls to the platform API. Every request
// carries the session's bearer token when one is present, and every 401
// clears the session.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	session    *session.Store
	logger     *zap.Logger
	metrics    *observability.Metrics
	dispatcher events.Dispatcher

	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// New builds a client for baseURL bound to store.
func New(baseURL string, store *session.Store, opts Options) (*Client, error) {
	if store == nil {
		return nil, ErrNilSession
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base url scheme %q", u.Scheme)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		baseURL:    u,
		http:       httpClient,
		session:    store,
		logger:     logger.Named("api"),
		metrics:    opts.Metrics,
		dispatcher: opts.Dispatcher,
	}
	c.requestInterceptors = []RequestInterceptor{c.bearerAuth}
	c.responseInterceptors = []ResponseInterceptor{c.expireOnUnauthorized}
	return c, nil
}

// Session returns the store the client reads tokens from.
func (c *Client) Session() *session.Store {
	return c.session
}

// UseRequest appends a request interceptor. It runs after the bearer token is attached.
func (c *Client) UseRequest(i RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, i)
}

// UseResponse appends a response interceptor. It runs after 401 handling.
func (c *Client) UseResponse(i ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, i)
}

func (c *Client) endpoint(path string) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	return u.String()
}

// do performs one attempt of method on path. A nil in sends no body; a nil
// out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, intercept := range c.requestInterceptors {
		if err := intercept(req); err != nil {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}
	}

	route := routeLabel(path)
	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordAPICall(method, route, 0, time.Since(start))
		c.logger.Warn("api call failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	duration := time.Since(start)
	c.metrics.RecordAPICall(method, route, res.StatusCode, duration)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}
	c.logger.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.StatusCode),
		zap.Duration("duration", duration))

	resp := &Response{
		Request:    req,
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       raw,
		Duration:   duration,
	}
	for _, intercept := range c.responseInterceptors {
		if err := intercept(ctx, resp); err != nil {
			return err
		}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return newAPIError(method, path, res.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// routeLabel collapses numeric path segments so metrics stay low-cardinality.
func routeLabel(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if _, err := strconv.Atoi(p); err == nil {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}
