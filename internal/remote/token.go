package remote

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenUsable reports whether the auth token is worth sending. A token
// whose exp claim has passed will be rejected remotely anyway, so the
// sync is skipped client-side. Tokens that cannot be parsed or carry
// no expiry are left for the server to judge.
func TokenUsable(token string, now time.Time) bool {
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(now)
}
