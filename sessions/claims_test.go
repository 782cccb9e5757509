package sessions_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-backoffice/sessions"
	"github.com/stretchr/testify/require"
)

func TestInspectToken(t *testing.T) {
	exp := time.Date(2026, 10, 20, 8, 0, 0, 0, time.UTC)
	iat := exp.Add(-24 * time.Hour)

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"sub": "hotel-staff-1",
		"exp": exp.Unix(),
		"iat": iat.Unix(),
	}).SignedString([]byte("any-key"))
	require.NoError(t, err)

	claims, ok := sessions.InspectToken(signed)
	require.True(t, ok)
	require.Equal(t, "hotel-staff-1", claims.Subject)
	require.True(t, claims.ExpiresAt.Equal(exp))
	require.True(t, claims.IssuedAt.Equal(iat))
	require.False(t, claims.Expired(exp.Add(-time.Minute)))
	require.True(t, claims.Expired(exp.Add(time.Minute)))
}

func TestInspectToken_Opaque(t *testing.T) {
	_, ok := sessions.InspectToken("opaque-session-token")
	require.False(t, ok)

	_, ok = sessions.InspectToken("")
	require.False(t, ok)
}

func TestTokenClaims_NoExpiry(t *testing.T) {
	require.False(t, sessions.TokenClaims{}.Expired(time.Now()))
}
