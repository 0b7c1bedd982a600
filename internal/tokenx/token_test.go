package tokenx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestExpiresAt_ReadsExpiryClaim(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "1", "exp": exp.Unix()})

	got, ok := ExpiresAt(token)
	require.True(t, ok)
	require.Equal(t, exp.Unix(), got.Unix())
}

func TestExpiresAt_NoExpiryClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "1"})

	_, ok := ExpiresAt(token)
	require.False(t, ok)
}

func TestExpiresAt_Garbage(t *testing.T) {
	_, ok := ExpiresAt("not-a-jwt")
	require.False(t, ok)
}
