package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-backoffice/cookies"
	"github.com/jrsteele09/go-backoffice/guard"
	"github.com/jrsteele09/go-backoffice/sessions"
	"github.com/rs/zerolog"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeySession stores the request's *sessions.Store
	ContextKeySession ContextKey = "session"
	// ContextKeyShell stores whether the page is rendered inside the navigation shell
	ContextKeyShell ContextKey = "shell"
	// ContextKeyLang stores the negotiated language.Tag
	ContextKeyLang ContextKey = "lang"
)

// RequireSession is middleware for HTML/HTMX routes. It hydrates a session store from the
// request cookies and applies the route guard before the page handler runs.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			store := s.newSessionStore(w, r)
			defer store.Close()

			state := store.Hydrate()
			decision := guard.Decide(state, r.URL.Path)

			zerolog.Ctx(r.Context()).Debug().
				Str("path", r.URL.Path).
				Stringer("phase", state.Phase).
				Stringer("decision", decision.Action).
				Msg("Route guard")

			switch decision.Action {
			case guard.ActionLoading:
				s.renderLoading(w, r)
				return
			case guard.ActionRedirect:
				redirectSuccess(w, r, decision.Target)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, store)
			ctx = context.WithValue(ctx, ContextKeyShell, decision.WithShell)
			next(w, r.WithContext(ctx))
		}
	}
}

// newSessionStore binds a session store to the cookies of one request. Logout navigates
// with an htmx-aware redirect on the same response. Profile refreshes are shared through the
// server-wide cache and refresh group, so repeated requests of one session do not refetch.
func (s *Server) newSessionStore(w http.ResponseWriter, r *http.Request) *sessions.Store {
	jar := cookies.NewHTTPStore(w, r, cookies.WithSecure(s.config.GetSecureCookies()))
	return sessions.New(jar,
		sessions.WithProfileSource(s.backend),
		sessions.WithProfileCache(s.profiles),
		sessions.WithRefreshGroup(s.refreshes),
		sessions.WithCookieDays(s.config.GetSessionCookieDays()),
		sessions.WithNavigator(func(path string) {
			redirectSuccess(w, r, path)
		}),
	)
}

// sessionFrom returns the store installed by RequireSession
func sessionFrom(r *http.Request) (*sessions.Store, bool) {
	store, ok := r.Context().Value(ContextKeySession).(*sessions.Store)
	return store, ok
}
