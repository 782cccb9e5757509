package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-backoffice/backoffice"
	"github.com/jrsteele09/go-backoffice/internal/config"
	"github.com/jrsteele09/go-backoffice/navshell"
	"github.com/jrsteele09/go-backoffice/profiles"
	"github.com/jrsteele09/go-backoffice/sessions"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Backend is the part of the back-office API the web application talks to
type Backend interface {
	sessions.ProfileSource
	navshell.OrderSource
	Login(ctx context.Context, email, password string) (backoffice.LoginResult, error)
}

type Server struct {
	env       string // Environment (e.g., "DEV", "PROD")
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	backend   Backend
	profiles  profiles.Repo
	refreshes *singleflight.Group // profile refreshes in flight, shared by all requests
	counter   *navshell.Counter
	pages     pageTemplates
}

func New(config config.Config, backend Backend, profileCache profiles.Repo) (*Server, error) {
	pages, err := parsePageTemplates()
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to parse templates: %w", err)
	}

	s := &Server{
		mux:       http.NewServeMux(),
		config:    config,
		backend:   backend,
		profiles:  profileCache,
		refreshes: &singleflight.Group{},
		counter:   navshell.NewCounter(backend),
		pages:     pages,
	}
	s.env = config.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	log.Debug().Msgf("[%s] %s", colouredMethod(method), path)
}
