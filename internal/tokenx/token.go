// Package tokenx peeks into JWT access tokens for display purposes.
//
// Token validity is never decided locally: a token is trusted only if the
// backend accepts it on the profile fetch. This package merely decodes the
// expiry claim so screens can show when the session will lapse.
package tokenx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt returns the expiry of the given access token without verifying
// its signature. The second result is false when the token cannot be parsed
// or carries no expiry claim.
func ExpiresAt(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
