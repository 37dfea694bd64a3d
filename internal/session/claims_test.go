package session

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func TestDecodeIdentity(t *testing.T) {
	expired := signedToken(t, jwt.MapClaims{
		"sub":   "u-9",
		"email": "coord@ndis.com",
		"role":  "coordinator",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	tests := []struct {
		name      string
		token     string
		wantOK    bool
		wantEmail string
		wantID    string
	}{
		{"empty", "", false, "", ""},
		{"garbage", "not.a.jwt", false, "", ""},
		{"no email claim", signedToken(t, jwt.MapClaims{"sub": "1"}), false, "", ""},
		{"expired still decodes", expired, true, "coord@ndis.com", "u-9"},
		{"numeric subject", signedToken(t, jwt.MapClaims{"sub": 12, "email": "a@ndis.com"}), true, "a@ndis.com", "12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ident, ok := DecodeIdentity(tt.token)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if ident != nil {
					t.Fatalf("identity = %+v, want nil", ident)
				}
				return
			}
			if ident.Email != tt.wantEmail || ident.ID != tt.wantID {
				t.Errorf("identity = %+v", ident)
			}
		})
	}
}
