package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

type messaged struct{ msg string }

func (m messaged) Error() string       { return "raw: " + m.msg }
func (m messaged) UserMessage() string { return m.msg }

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "fallback"},
		{"plain", errors.New("dial tcp: refused"), "fallback"},
		{"direct", messaged{"Email already exists"}, "Email already exists"},
		{"wrapped", fmt.Errorf("create: %w", messaged{"Invalid credentials"}), "Invalid credentials"},
		{"blank message", messaged{"  "}, "fallback"},
		{"domain error", NewValidationError("first name is required"), "first name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err, "fallback"); got != tt.want {
				t.Errorf("UserMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToDomainError(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Fatal("nil should map to nil")
	}
	forbidden := NewForbidden("admin role required")
	if got := ToDomainError(fmt.Errorf("wrap: %w", forbidden)); got.HTTPStatus != http.StatusForbidden {
		t.Errorf("status = %d", got.HTTPStatus)
	}
	internal := ToDomainError(errors.New("boom"))
	if internal.Code != "INTERNAL_ERROR" || internal.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("internal = %+v", internal)
	}
	if !errors.Is(NewUpstreamError(errors.ErrUnsupported), errors.ErrUnsupported) {
		t.Error("upstream error should unwrap to cause")
	}
}
