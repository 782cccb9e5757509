package server

import "github.com/jrsteele09/go-backoffice/guard"

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Session routes
	RouteHome           = guard.HomePath
	RouteLogin          = guard.LoginPath
	RouteForgotPassword = guard.ForgotPasswordPath
	RouteLogout         = "/logout"

	// Back-office sections, one per sidebar link
	RouteRooms          = "/rooms"
	RouteRoomsNew       = "/rooms/new"
	RouteRoomTypes      = "/room-types"
	RouteStock          = "/stock"
	RouteAttractions    = "/attractions"
	RouteAttractionsNew = "/attractions/new"
	RouteOrders         = "/orders"

	// Fragments polled by htmx
	RouteOrderBadge = "/partials/order-badge"

	// Process liveness
	RouteHealthz = "/healthz"

	// Static Asset Routes (patterns)
	RouteStatic = "/static/{file...}"
)
