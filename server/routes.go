package server

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/go-backoffice/navshell"
	"github.com/rs/zerolog/log"
)

func (s *Server) initRoutes() {
	guarded := s.HTMLMiddleWare(s.RequireSession())

	// SESSION
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), guarded...))
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.LoginSubmissionHandler(), guarded...))
	s.RegisterRouteHandler("GET "+RouteForgotPassword, ChainMiddleware(s.ForgotPasswordHandler(), guarded...))
	s.RegisterRouteHandler("GET "+RouteLogout, ChainMiddleware(s.LogoutHandler(), guarded...))
	s.RegisterRouteHandler("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), guarded...))

	// BACK OFFICE
	s.RegisterRouteHandler("GET /{$}", ChainMiddleware(s.DashboardHandler(), guarded...))
	for _, link := range navshell.AllLinks() {
		if link.Href == RouteHome {
			continue
		}
		s.RegisterRouteHandler("GET "+link.Href, ChainMiddleware(s.SectionHandler(link), guarded...))
	}
	s.RegisterRouteHandler("GET "+RouteOrderBadge, ChainMiddleware(s.OrderBadgeHandler(), guarded...))

	s.RegisterRouteFunc("GET "+RouteHealthz, s.HealthzHandler())
	s.RegisterRouteHandler("GET "+RouteStatic, ChainMiddleware(s.serveFileHandler(), s.StaticMiddleware()...))

	// Everything else is guarded too, so unknown paths still redirect to the login page
	s.RegisterRouteHandler("/", ChainMiddleware(s.NotFoundHandler(), guarded...))
}

func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filePath := strings.TrimPrefix(r.PathValue("file"), "/")
		if filePath == "" {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		err := StreamFile(w, r, filePath)
		if err != nil {
			logError(r.Method, filePath, err)
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
	}
}

func logError(method, path string, err error) {
	log.Debug().Err(err).Msgf("[%s] %s%s%s", colouredMethod(method), Red, path, ResetColor)
}
