package cookies

import (
	"net/http"
	"time"
)

const day = 24 * time.Hour

var _ Store = (*HTTPStore)(nil)

// HTTPStore is a Store bound to a single request/response pair. Request cookies are the
// persisted state; writes become Set-Cookie headers and are visible to later Get calls made
// while handling the same request.
type HTTPStore struct {
	w       http.ResponseWriter
	r       *http.Request
	secure  bool
	now     func() time.Time
	pending map[string]*http.Cookie
}

type Option func(*HTTPStore)

// WithSecure sets the Secure flag on written cookies
func WithSecure(secure bool) Option {
	return func(s *HTTPStore) {
		s.secure = secure
	}
}

// WithClock overrides the clock used to compute expiry times
func WithClock(now func() time.Time) Option {
	return func(s *HTTPStore) {
		s.now = now
	}
}

func NewHTTPStore(w http.ResponseWriter, r *http.Request, opts ...Option) *HTTPStore {
	s := &HTTPStore{
		w:       w,
		r:       r,
		now:     time.Now,
		pending: make(map[string]*http.Cookie),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HTTPStore) Get(name string) (string, bool) {
	if c, ok := s.pending[name]; ok {
		if c.MaxAge < 0 || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}

	c, err := s.r.Cookie(name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

func (s *HTTPStore) Set(name, value string, days int) {
	expires := s.now().Add(time.Duration(days) * day)
	maxAge := days * int(day/time.Second)
	if maxAge <= 0 {
		maxAge = -1
	}
	s.write(&http.Cookie{
		Name:    name,
		Value:   value,
		Expires: expires,
		MaxAge:  maxAge,
	})
}

func (s *HTTPStore) Remove(name string) {
	s.write(&http.Cookie{
		Name:    name,
		Value:   "",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})
}

func (s *HTTPStore) write(c *http.Cookie) {
	c.Path = "/"
	c.HttpOnly = true
	c.Secure = s.secure
	c.SameSite = http.SameSiteLaxMode

	s.pending[c.Name] = c
	http.SetCookie(s.w, c)
}
