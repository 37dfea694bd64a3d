package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the platform API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Code       string
	// Message is the body's error text, empty when the body carried none.
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

// UserMessage returns the text shown inline to the user.
func (e *APIError) UserMessage() string {
	return e.Message
}

// Unauthorized reports whether the response was a 401.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsUnauthorized reports whether err carries a 401 response.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// errorBody accepts {"error": "text"} and {"error": {"code": "...", "message": "..."}}.
type errorBody struct {
	Error json.RawMessage `json:"error"`
}

type structuredError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	apiErr := &APIError{Method: method, Path: path, StatusCode: status, Body: body}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Error) == 0 {
		return apiErr
	}
	var text string
	if err := json.Unmarshal(eb.Error, &text); err == nil {
		apiErr.Message = strings.TrimSpace(text)
		return apiErr
	}
	var se structuredError
	if err := json.Unmarshal(eb.Error, &se); err == nil {
		apiErr.Code = se.Code
		apiErr.Message = strings.TrimSpace(se.Message)
	}
	return apiErr
}
