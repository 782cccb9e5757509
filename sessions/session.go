// Package sessions owns the authenticated back-office session: hydration from cookies,
// login, logout and the best-effort profile refresh.
package sessions

import (
	"github.com/jrsteele09/go-backoffice/users"
)

// Cookie names owned by the session store
const (
	CookieToken = "authToken"
	CookieUser  = "user"
)

// DemoTokenPrefix marks tokens issued for local demos. They are never accepted.
const DemoTokenPrefix = "demo-jwt-token-"

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseUnauthenticated
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is a snapshot of the session. Token and User are only set when authenticated.
type State struct {
	Phase Phase
	Token string
	User  users.User
}

func (s State) IsAuthenticated() bool {
	return s.Phase == PhaseAuthenticated
}

func (s State) IsLoading() bool {
	return s.Phase == PhaseLoading
}

func (s State) clone() State {
	s.User = s.User.Clone()
	return s
}
