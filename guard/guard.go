// Package guard decides, for a session state and a requested path, whether a page may be
// shown or the browser must be sent elsewhere.
package guard

import (
	"strings"

	"github.com/jrsteele09/go-backoffice/sessions"
)

const (
	LoginPath          = "/login"
	ForgotPasswordPath = "/forgot-password"
	HomePath           = "/"
)

type Action int

const (
	// ActionLoading shows a loading indicator and navigates nowhere
	ActionLoading Action = iota
	// ActionRedirect sends the browser to Decision.Target
	ActionRedirect
	// ActionRender shows the requested page
	ActionRender
)

func (a Action) String() string {
	switch a {
	case ActionLoading:
		return "loading"
	case ActionRedirect:
		return "redirect"
	case ActionRender:
		return "render"
	default:
		return "unknown"
	}
}

type Decision struct {
	Action    Action
	Target    string // redirect destination
	WithShell bool   // render inside the navigation shell
}

// IsExempt reports whether path is reachable without a session
func IsExempt(path string) bool {
	p := normalise(path)
	return p == LoginPath || p == ForgotPasswordPath
}

// Decide is evaluated on every navigation.
func Decide(state sessions.State, path string) Decision {
	p := normalise(path)
	exempt := IsExempt(p)

	switch {
	case state.IsLoading():
		return Decision{Action: ActionLoading}
	case !state.IsAuthenticated() && !exempt:
		return Decision{Action: ActionRedirect, Target: LoginPath}
	case state.IsAuthenticated() && p == LoginPath:
		return Decision{Action: ActionRedirect, Target: HomePath}
	default:
		return Decision{Action: ActionRender, WithShell: !exempt}
	}
}

func normalise(path string) string {
	if path == "" {
		return HomePath
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return HomePath
		}
	}
	return path
}
