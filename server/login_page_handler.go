package server

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/go-backoffice/internal/errors"
	"github.com/rs/zerolog"
)

// LoginPageHandler displays the login page (GET /login)
func (s *Server) LoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderLogin(w, r, http.StatusOK, "", r.URL.Query().Get("email"))
	}
}

// LoginSubmissionHandler processes the login form submission (POST /login). The backend
// checks the credentials; the session store installs the normalised result.
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(r)
		if !ok {
			http.Error(w, "Session required", http.StatusInternalServerError)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		email := strings.TrimSpace(r.FormValue("email"))
		password := r.FormValue("password")

		if email == "" || password == "" {
			s.renderLogin(w, r, http.StatusBadRequest, "login.error.required", email)
			return
		}

		result, err := s.backend.Login(r.Context(), email, password)
		if err != nil {
			zerolog.Ctx(r.Context()).Info().Err(err).Str("email", email).Msg("Login failed")
			status, messageKey := loginFailure(err)
			s.renderLogin(w, r, status, messageKey, email)
			return
		}

		if !store.Login(email, password, result.Token, &result.User) {
			s.renderLogin(w, r, http.StatusUnauthorized, "login.error.rejected", email)
			return
		}

		redirectSuccess(w, r, RouteHome)
	}
}

// loginFailure maps a backend login error to a response status and message key
func loginFailure(err error) (int, string) {
	switch {
	case errors.Is(err, errors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "login.error.invalid"
	case errors.Is(err, errors.ErrTimeout):
		return http.StatusGatewayTimeout, "login.error.timeout"
	case errors.Is(err, errors.ErrUnavailable):
		return http.StatusBadGateway, "login.error.unavailable"
	default:
		return http.StatusBadGateway, "login.error.unexpected"
	}
}

func (s *Server) renderLogin(w http.ResponseWriter, r *http.Request, status int, errorKey, email string) {
	s.renderPage(w, r, status, "login.title", tmplLogin, pageData{
		"Error": errorKey,
		"Email": email,
	})
}

// LogoutHandler ends the session and navigates to the login page
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(r)
		if !ok {
			redirectSuccess(w, r, RouteLogin)
			return
		}
		store.Logout()
	}
}

// ForgotPasswordHandler renders the forgot-password page
func (s *Server) ForgotPasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, r, http.StatusOK, "forgot.title", tmplForgotPassword, nil)
	}
}
