package navshell_test

import (
	"testing"

	"github.com/jrsteele09/go-backoffice/navshell"
	"github.com/jrsteele09/go-backoffice/users"
	"github.com/stretchr/testify/require"
)

func hrefs(links []navshell.Link) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Href)
	}
	return out
}

func TestLinksFor(t *testing.T) {
	require.Equal(t,
		[]string{"/", "/rooms", "/rooms/new", "/room-types", "/stock", "/orders"},
		hrefs(navshell.LinksFor(users.RoleHotels)))

	require.Equal(t,
		[]string{"/", "/attractions", "/attractions/new", "/stock", "/orders"},
		hrefs(navshell.LinksFor(users.RoleAttraction)))

	require.Equal(t, []string{"/"}, hrefs(navshell.LinksFor(users.Role("guest"))))
	require.Equal(t, []string{"/"}, hrefs(navshell.LinksFor("")))
}

func TestLinksFor_DeveloperSeesUnion(t *testing.T) {
	dev := hrefs(navshell.LinksFor(users.RoleDeveloper))

	for _, role := range []users.Role{users.RoleHotels, users.RoleAttraction} {
		for _, href := range hrefs(navshell.LinksFor(role)) {
			require.Contains(t, dev, href)
		}
	}

	seen := map[string]bool{}
	for _, href := range dev {
		require.False(t, seen[href], "duplicate link %s", href)
		seen[href] = true
	}
}

func TestAllowed(t *testing.T) {
	require.True(t, navshell.Allowed(users.RoleHotels, "/room-types"))
	require.False(t, navshell.Allowed(users.RoleHotels, "/attractions"))
	require.True(t, navshell.Allowed(users.RoleAttraction, "/attractions/new"))
	require.True(t, navshell.Allowed(users.RoleDeveloper, "/attractions"))
	require.True(t, navshell.Allowed(users.RoleDeveloper, "/rooms"))
}
