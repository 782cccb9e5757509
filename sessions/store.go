package sessions

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jrsteele09/go-backoffice/cookies"
	"github.com/jrsteele09/go-backoffice/internal/errors"
	"github.com/jrsteele09/go-backoffice/profiles"
	"github.com/jrsteele09/go-backoffice/users"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// LoginRoute is where Logout navigates to
const LoginRoute = "/login"

// ProfileSource is the backend used by the profile refresh. Implementations bound every
// call with their own timeout.
type ProfileSource interface {
	Health(ctx context.Context) error
	Profile(ctx context.Context, token, hotelID string) (map[string]any, error)
}

type subscriber struct {
	id int
	fn func(State)
}

// Store is the single owner of a session. All methods are safe for concurrent use.
type Store struct {
	lock sync.RWMutex

	jar        cookies.Store
	source     ProfileSource
	cache      profiles.Repo
	navigate   func(path string)
	cookieDays int
	group      *singleflight.Group

	state    State
	epoch    uint64 // bumped by every login and logout
	hydrated bool
	closed   bool

	subscribers    []subscriber
	nextSubscriber int

	inflight sync.WaitGroup
}

type Option func(*Store)

// WithProfileSource enables the background profile refresh
func WithProfileSource(source ProfileSource) Option {
	return func(s *Store) {
		s.source = source
	}
}

// WithProfileCache shares refreshed profile fields between stores
func WithProfileCache(cache profiles.Repo) Option {
	return func(s *Store) {
		s.cache = cache
	}
}

// WithRefreshGroup shares in-flight profile refreshes between stores
func WithRefreshGroup(group *singleflight.Group) Option {
	return func(s *Store) {
		s.group = group
	}
}

// WithNavigator sets the function Logout uses to move to the login screen
func WithNavigator(navigate func(path string)) Option {
	return func(s *Store) {
		s.navigate = navigate
	}
}

// WithCookieDays overrides the session cookie lifetime (default 1 day)
func WithCookieDays(days int) Option {
	return func(s *Store) {
		if days > 0 {
			s.cookieDays = days
		}
	}
}

func New(jar cookies.Store, opts ...Option) *Store {
	s := &Store{
		jar:        jar,
		cookieDays: 1,
		state:      State{Phase: PhaseLoading},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the current session
func (s *Store) State() State {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.state.clone()
}

// Hydrate rebuilds the session from the cookies. It runs once; later calls return the
// current state. Invalid persisted data is purged and leaves the store unauthenticated.
func (s *Store) Hydrate() State {
	s.lock.Lock()
	if s.hydrated {
		st := s.state.clone()
		s.lock.Unlock()
		return st
	}
	s.hydrated = true

	token, hasToken := s.jar.Get(CookieToken)
	rawUser, hasUser := s.jar.Get(CookieUser)

	refresh := false
	switch {
	case !hasToken || !hasUser:
		s.state = State{Phase: PhaseUnauthenticated}
	default:
		user, err := restore(token, rawUser)
		if err != nil {
			log.Debug().Err(err).Msg("Discarding persisted session")
			s.purge()
			s.state = State{Phase: PhaseUnauthenticated}
			break
		}
		// A live cache entry means a recent refresh already enriched this token
		cached := s.overlayCached(token, &user)
		s.state = State{Phase: PhaseAuthenticated, Token: token, User: user}
		refresh = !cached
	}

	st, epoch := s.state.clone(), s.epoch
	s.lock.Unlock()

	s.notify(st)
	if refresh {
		s.scheduleRefresh(epoch, st.Token, st.User.HotelID)
	}
	return st
}

// Login installs a session for a token and user obtained by the caller from the backend.
// It performs no network call. The password is accepted for parity with the login form and
// is never stored. It returns false, leaving the store untouched, for a missing token or
// user, a demo token or an incomplete user record.
func (s *Store) Login(email, password, token string, user *users.User) bool {
	if err := validate(token, user); err != nil {
		log.Debug().Err(err).Str("email", email).Msg("Login rejected")
		return false
	}

	u := user.Clone()
	encoded, err := users.EncodeCookie(u)
	if err != nil {
		log.Err(err).Str("email", email).Msg("Login rejected: user record not encodable")
		return false
	}

	s.lock.Lock()
	if s.state.Token != token {
		s.dropCached(s.state.Token)
	}
	s.epoch++
	s.hydrated = true
	s.jar.Set(CookieToken, token, s.cookieDays)
	s.jar.Set(CookieUser, encoded, s.cookieDays)
	s.overlayCached(token, &u)
	s.state = State{Phase: PhaseAuthenticated, Token: token, User: u}
	st, epoch := s.state.clone(), s.epoch
	s.lock.Unlock()

	log.Debug().Str("email", email).Str("hotel_id", u.HotelID).Msg("Login accepted")
	s.notify(st)
	s.scheduleRefresh(epoch, token, u.HotelID)
	return true
}

// Logout clears the session and the cookies, then navigates to the login screen.
// It always succeeds and is safe to call when already logged out.
func (s *Store) Logout() {
	s.lock.Lock()
	s.dropCached(s.state.Token)
	s.epoch++
	s.hydrated = true
	s.purge()
	s.state = State{Phase: PhaseUnauthenticated}
	st := s.state.clone()
	navigate := s.navigate
	s.lock.Unlock()

	s.notify(st)
	if navigate != nil {
		navigate(LoginRoute)
	}
}

// Subscribe registers fn to receive a snapshot after every state change. The returned
// function unregisters it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.closed {
		return func() {}
	}
	id := s.nextSubscriber
	s.nextSubscriber++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		s.lock.Lock()
		defer s.lock.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Close detaches the store from its consumer. In-flight refreshes keep running until they
// finish or time out, but no longer change the state or notify subscribers.
func (s *Store) Close() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.closed = true
	s.subscribers = nil
}

// Wait blocks until every scheduled profile refresh has finished
func (s *Store) Wait() {
	s.inflight.Wait()
}

func (s *Store) notify(st State) {
	s.lock.RLock()
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.lock.RUnlock()

	for _, sub := range subs {
		sub.fn(st.clone())
	}
}

// purge removes both session cookies. Callers hold the lock.
func (s *Store) purge() {
	s.jar.Remove(CookieToken)
	s.jar.Remove(CookieUser)
}

// overlayCached merges profile fields cached by an earlier refresh and reports whether an
// entry was found. Callers hold the lock.
func (s *Store) overlayCached(token string, u *users.User) bool {
	if s.cache == nil {
		return false
	}
	fields, err := s.cache.Get(token)
	if err != nil {
		return false
	}
	u.Merge(fields)
	return true
}

// dropCached forgets the cached profile of a token. Callers hold the lock.
func (s *Store) dropCached(token string) {
	if s.cache == nil || token == "" {
		return
	}
	if err := s.cache.Delete(token); err != nil {
		log.Err(err).Msg("Failed to drop cached profile")
	}
}

func restore(token, rawUser string) (users.User, error) {
	if strings.HasPrefix(token, DemoTokenPrefix) {
		return users.User{}, errors.ErrDemoToken
	}
	user, err := users.DecodeCookie(rawUser)
	if err != nil {
		return users.User{}, fmt.Errorf("%w: %v", errors.ErrInvalidSession, err)
	}
	if !user.IsComplete() {
		return users.User{}, errors.ErrIncompleteUser
	}
	return user, nil
}

func validate(token string, user *users.User) error {
	switch {
	case token == "" || user == nil:
		return errors.ErrInvalidSession
	case strings.HasPrefix(token, DemoTokenPrefix):
		return errors.ErrDemoToken
	case !user.IsComplete():
		return errors.ErrIncompleteUser
	}
	return nil
}
