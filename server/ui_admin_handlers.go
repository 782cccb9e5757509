package server

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/jrsteele09/go-backoffice/internal/i18n"
	"github.com/jrsteele09/go-backoffice/navshell"
	"github.com/jrsteele09/go-backoffice/sessions"
	"github.com/jrsteele09/go-backoffice/users"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

const contentTypeHTML = "text/html; charset=utf-8"

// layoutData is the model of both layouts. The public layout ignores the shell fields.
type layoutData struct {
	AppName      string
	Lang         language.Tag
	LangCode     string
	SwitchLang   string
	Title        string
	Path         string
	User         users.User
	Links        []navshell.Link
	BadgeRefresh int // seconds
	Content      template.HTML
}

// pageData is handed to content templates. Lang is always set.
type pageData map[string]any

// renderPage renders contentTemplate inside the navigation shell when the route guard asked
// for it, and inside the bare public layout otherwise.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, titleKey, contentTemplate string, data pageData) {
	lang := langFrom(r)
	if data == nil {
		data = pageData{}
	}
	data["Lang"] = lang

	var content bytes.Buffer
	if err := s.pages.execute(&content, contentTemplate, data); err != nil {
		zerolog.Ctx(r.Context()).Err(err).Str("template", contentTemplate).Msg("Failed to render content")
		http.Error(w, "Failed to render content", http.StatusInternalServerError)
		return
	}

	layout := layoutData{
		AppName:    s.config.GetAppName(),
		Lang:       lang,
		LangCode:   i18n.Code(lang),
		SwitchLang: i18n.Code(otherLang(lang)),
		Title:      i18n.T(lang, titleKey),
		Path:       r.URL.Path,
		Content:    template.HTML(content.String()),
	}

	layoutTemplate := tmplPublicLayout
	if withShell, _ := r.Context().Value(ContextKeyShell).(bool); withShell {
		if store, ok := sessionFrom(r); ok {
			user := store.State().User
			layout.User = user
			layout.Links = navshell.LinksFor(user.Role)
			layout.BadgeRefresh = int(s.config.GetOrderBadgeRefresh() / time.Second)
			layoutTemplate = tmplShellLayout
		}
	}

	var page bytes.Buffer
	if err := s.pages.execute(&page, layoutTemplate, layout); err != nil {
		zerolog.Ctx(r.Context()).Err(err).Str("template", layoutTemplate).Msg("Failed to render layout")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, _ = page.WriteTo(w)
}

// renderLoading shows the loading indicator while a session is still being resolved
func (s *Server) renderLoading(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	s.renderPage(w, r, http.StatusOK, "loading", tmplLoading, nil)
}

func otherLang(lang language.Tag) language.Tag {
	if lang == i18n.English {
		return i18n.Thai
	}
	return i18n.English
}

// DashboardHandler renders the landing page of the back office
func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(r)
		if !ok {
			http.Error(w, "Session required", http.StatusUnauthorized)
			return
		}
		state := store.State()

		data := pageData{
			"User":   state.User,
			"Orders": s.counter.Fetch(r.Context(), state.Token, state.User.HotelID),
		}
		if claims, ok := sessions.InspectToken(state.Token); ok && !claims.ExpiresAt.IsZero() {
			data["ExpiresAt"] = claims.ExpiresAt
		}

		s.renderPage(w, r, http.StatusOK, "dashboard.title", tmplDashboard, data)
	}
}

// SectionHandler renders the page behind a sidebar link. Roles that do not see the link
// get a 403 inside the shell.
func (s *Server) SectionHandler(link navshell.Link) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(r)
		if !ok {
			http.Error(w, "Session required", http.StatusUnauthorized)
			return
		}

		status := http.StatusOK
		data := pageData{"Link": link}
		if !navshell.Allowed(store.State().User.Role, link.Href) {
			status = http.StatusForbidden
			data["Forbidden"] = true
		}
		s.renderPage(w, r, status, link.LabelKey, tmplSection, data)
	}
}

// OrderBadgeHandler renders the sidebar badge fragment polled by htmx
func (s *Server) OrderBadgeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ok := sessionFrom(r)
		if !ok {
			http.Error(w, "Session required", http.StatusUnauthorized)
			return
		}
		state := store.State()
		counts := s.counter.Fetch(r.Context(), state.Token, state.User.HotelID)

		w.Header().Set("Content-Type", contentTypeHTML)
		w.Header().Set("Cache-Control", "no-store")
		if err := s.pages.execute(w, tmplOrderBadge, counts); err != nil {
			zerolog.Ctx(r.Context()).Err(err).Msg("Failed to render order badge")
		}
	}
}

// NotFoundHandler renders unknown paths. It sits behind the session guard, so only signed-in
// users see it.
func (s *Server) NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, r, http.StatusNotFound, "error.not_found", tmplNotFound, nil)
	}
}
