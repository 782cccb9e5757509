package server

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/jrsteele09/go-backoffice/internal/i18n"
)

//go:embed templates/*
var templateFiles embed.FS

const (
	tmplShellLayout    = "layout.html"
	tmplPublicLayout   = "public_layout.html"
	tmplLogin          = "login.html"
	tmplForgotPassword = "forgot_password.html"
	tmplLoading        = "loading.html"
	tmplDashboard      = "dashboard.html"
	tmplSection        = "section.html"
	tmplNotFound       = "not_found.html"
	tmplOrderBadge     = "order_badge.html"
)

var templateFuncs = template.FuncMap{
	"t": i18n.T,
	"datetime": func(t time.Time) string {
		return t.Local().Format("2006-01-02 15:04")
	},
}

func TemplateFilesFS() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

// ParseTemplate parses a template from the embedded filesystem
func ParseTemplate(name string) (*template.Template, error) {
	content, err := fs.ReadFile(TemplateFilesFS(), name)
	if err != nil {
		return nil, err
	}
	return template.New(name).Funcs(templateFuncs).Parse(string(content))
}

// pageTemplates holds every template parsed once at startup
type pageTemplates map[string]*template.Template

func parsePageTemplates() (pageTemplates, error) {
	names := []string{
		tmplShellLayout, tmplPublicLayout, tmplLogin, tmplForgotPassword, tmplLoading,
		tmplDashboard, tmplSection, tmplNotFound, tmplOrderBadge,
	}
	pages := make(pageTemplates, len(names))
	for _, name := range names {
		tmpl, err := ParseTemplate(name)
		if err != nil {
			return nil, fmt.Errorf("[server parsePageTemplates] %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return pages, nil
}

func (p pageTemplates) execute(w io.Writer, name string, data any) error {
	tmpl, ok := p[name]
	if !ok {
		return fmt.Errorf("[server execute] unknown template %s", name)
	}
	return tmpl.Execute(w, data)
}
