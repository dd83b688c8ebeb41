package remote

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenUsable(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty", "", false},
		{"expired", signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()}), false},
		{"valid", signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}), true},
		{"no expiry claim", signedToken(t, jwt.MapClaims{"sub": "user-1"}), true},
		{"not a JWT", "opaque-session-token", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenUsable(tt.token, now))
		})
	}
}
