package cookiefake_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-backoffice/cookies/cookiefake"
	"github.com/stretchr/testify/require"
)

func TestJar_Expiry(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	jar := cookiefake.NewJar()
	jar.Now = func() time.Time { return now }

	jar.Set("authToken", "tok", 1)
	v, ok := jar.Get("authToken")
	require.True(t, ok)
	require.Equal(t, "tok", v)

	now = now.Add(23 * time.Hour)
	_, ok = jar.Get("authToken")
	require.True(t, ok)

	now = now.Add(time.Hour)
	_, ok = jar.Get("authToken")
	require.False(t, ok)
}

func TestJar_Remove(t *testing.T) {
	jar := cookiefake.NewJar()
	jar.Set("user", "x", 1)
	jar.Remove("user")

	_, ok := jar.Get("user")
	require.False(t, ok)

	expires, ok := jar.Expiry("user")
	require.True(t, ok)
	require.True(t, expires.Before(time.Now()))

	// removing an absent cookie is harmless
	jar.Remove("missing")
	_, ok = jar.Get("missing")
	require.False(t, ok)
}
