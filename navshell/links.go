// Package navshell holds the sidebar of the back office: which links a role sees and the
// order counts shown in its badge.
package navshell

import (
	"github.com/jrsteele09/go-backoffice/users"
)

// Link is a sidebar entry. Labels are i18n message keys.
type Link struct {
	Key      string
	Href     string
	LabelKey string
	Icon     string
}

var (
	commonLinks = []Link{
		{Key: "dashboard", Href: "/", LabelKey: "nav.dashboard", Icon: "bi-speedometer2"},
	}

	hotelLinks = []Link{
		{Key: "rooms", Href: "/rooms", LabelKey: "nav.rooms", Icon: "bi-door-open"},
		{Key: "rooms-new", Href: "/rooms/new", LabelKey: "nav.rooms_new", Icon: "bi-plus-square"},
		{Key: "room-types", Href: "/room-types", LabelKey: "nav.room_types", Icon: "bi-grid"},
		{Key: "stock", Href: "/stock", LabelKey: "nav.stock", Icon: "bi-box-seam"},
		{Key: "orders", Href: "/orders", LabelKey: "nav.orders", Icon: "bi-receipt"},
	}

	attractionLinks = []Link{
		{Key: "attractions", Href: "/attractions", LabelKey: "nav.attractions", Icon: "bi-bank"},
		{Key: "attractions-new", Href: "/attractions/new", LabelKey: "nav.attractions_new", Icon: "bi-plus-circle"},
		{Key: "stock", Href: "/stock", LabelKey: "nav.stock", Icon: "bi-box-seam"},
		{Key: "orders", Href: "/orders", LabelKey: "nav.orders", Icon: "bi-receipt"},
	}
)

// LinksFor returns the sidebar links visible to role. Developers see the union of the hotel
// and attraction links; unknown roles only see the common links.
func LinksFor(role users.Role) []Link {
	switch role {
	case users.RoleHotels:
		return join(commonLinks, hotelLinks)
	case users.RoleAttraction:
		return join(commonLinks, attractionLinks)
	case users.RoleDeveloper:
		return join(commonLinks, hotelLinks, attractionLinks)
	default:
		return join(commonLinks)
	}
}

// AllLinks returns every link of every role, without duplicates
func AllLinks() []Link {
	return LinksFor(users.RoleDeveloper)
}

// Allowed reports whether role may open href
func Allowed(role users.Role, href string) bool {
	for _, l := range LinksFor(role) {
		if l.Href == href {
			return true
		}
	}
	return false
}

// join concatenates link sets in order, dropping repeated keys
func join(sets ...[]Link) []Link {
	seen := make(map[string]struct{})
	var out []Link
	for _, set := range sets {
		for _, l := range set {
			if _, ok := seen[l.Key]; ok {
				continue
			}
			seen[l.Key] = struct{}{}
			out = append(out, l)
		}
	}
	return out
}
