package backoffice_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jrsteele09/go-backoffice/backoffice"
	"github.com/jrsteele09/go-backoffice/internal/errors"
	"github.com/jrsteele09/go-backoffice/users"
	"github.com/stretchr/testify/require"
)

type timeouts struct {
	d time.Duration
}

func (t timeouts) GetLoginTimeout() time.Duration   { return t.d }
func (t timeouts) GetHealthTimeout() time.Duration  { return t.d }
func (t timeouts) GetProfileTimeout() time.Duration { return t.d }
func (t timeouts) GetOrdersTimeout() time.Duration  { return t.d }

func newClient(t *testing.T, handler http.Handler, timeout time.Duration) *backoffice.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backoffice.New(srv.URL, timeouts{d: timeout}, backoffice.WithHTTPClient(srv.Client()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func slowHandler(w http.ResponseWriter, r *http.Request) {
	select {
	case <-r.Context().Done():
	case <-time.After(2 * time.Second):
	}
}

func TestClient_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, backoffice.PathHealth, r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}), time.Second)
		require.NoError(t, c.Health(context.Background()))
	})

	t.Run("unhealthy", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}), time.Second)
		err := c.Health(context.Background())
		require.ErrorIs(t, err, errors.ErrUnhealthy)
		require.ErrorIs(t, err, errors.ErrUnexpectedStatus)
	})

	t.Run("timeout", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(slowHandler), 50*time.Millisecond)
		require.ErrorIs(t, c.Health(context.Background()), errors.ErrTimeout)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		c := backoffice.New(srv.URL, timeouts{d: time.Second})
		require.ErrorIs(t, c.Health(context.Background()), errors.ErrUnavailable)
	})
}

func TestClient_Profile(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, backoffice.PathProfile+"h-7", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{
			"data": map[string]any{"hotel_name": "Riverside", "rooms": 12},
		})
	}), time.Second)

	fields, err := c.Profile(context.Background(), "tok-1", "h-7")
	require.NoError(t, err)
	require.Equal(t, "Riverside", fields["hotel_name"])
	require.Equal(t, json.Number("12"), fields["rooms"])
}

func TestClient_ProfileErrors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}), time.Second)
		_, err := c.Profile(context.Background(), "tok", "1")
		require.ErrorIs(t, err, errors.ErrUnexpectedStatus)
	})

	t.Run("missing data", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		}), time.Second)
		_, err := c.Profile(context.Background(), "tok", "1")
		require.ErrorIs(t, err, errors.ErrMalformedPayload)
	})

	t.Run("not json", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}), time.Second)
		_, err := c.Profile(context.Background(), "tok", "1")
		require.ErrorIs(t, err, errors.ErrMalformedPayload)
	})

	t.Run("timeout", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(slowHandler), 50*time.Millisecond)
		_, err := c.Profile(context.Background(), "tok", "1")
		require.ErrorIs(t, err, errors.ErrTimeout)
	})
}

func TestClient_OrderCount(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case backoffice.PathOrders + "h1":
			writeJSON(w, http.StatusOK, map[string]any{"data": []any{1, 2, 3}})
		case backoffice.PathOrdersConfirm + "h1":
			writeJSON(w, http.StatusOK, map[string]any{"data": []any{}})
		case backoffice.PathOrdersCancelled + "h1":
			writeJSON(w, http.StatusOK, map[string]any{"data": "oops"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}), time.Second)

	n, err := c.OrderCount(context.Background(), "tok", backoffice.OrdersTotal, "h1")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = c.OrderCount(context.Background(), "tok", backoffice.OrdersConfirmed, "h1")
	require.NoError(t, err)
	require.Equal(t, 0, n)

	_, err = c.OrderCount(context.Background(), "tok", backoffice.OrdersCancelled, "h1")
	require.ErrorIs(t, err, errors.ErrMalformedPayload)

	_, err = c.OrderCount(context.Background(), "tok", backoffice.OrderKind("weird"), "h1")
	require.Error(t, err)
}

func TestClient_Login(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, backoffice.PathLogin, r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))

		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "wrong password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"tokenJWT":  "jwt-1",
			"hotel_id":  101,
			"firstname": "Somchai",
			"lastname":  "Jaidee",
		})
	}), time.Second)

	res, err := c.Login(context.Background(), "staff@hotel.test", "secret")
	require.NoError(t, err)
	require.Equal(t, "jwt-1", res.Token)
	require.Equal(t, users.User{
		Email:   "staff@hotel.test",
		Name:    "Somchai Jaidee",
		Role:    users.RoleHotels,
		HotelID: "101",
	}, res.User)

	_, err = c.Login(context.Background(), "staff@hotel.test", "nope")
	require.ErrorIs(t, err, errors.ErrInvalidCredentials)
	require.Contains(t, err.Error(), "wrong password")
}

func TestClient_LoginTimeout(t *testing.T) {
	c := newClient(t, http.HandlerFunc(slowHandler), 50*time.Millisecond)
	_, err := c.Login(context.Background(), "a@b.c", "x")
	require.ErrorIs(t, err, errors.ErrTimeout)
}

func TestClient_OrderCountLargeCollection(t *testing.T) {
	const orders = 4000
	var body strings.Builder
	body.WriteString(`{"status":"ok","data":[`)
	for i := 0; i < orders; i++ {
		if i > 0 {
			body.WriteByte(',')
		}
		fmt.Fprintf(&body, `{"id":"order-%04d","note":"%s","items":[1,2,{"x":"]"}]}`, i, strings.Repeat("x", 300))
	}
	body.WriteString(`],"total":4000}`)
	require.Greater(t, body.Len(), 1<<20)

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body.String()))
	}), 5*time.Second)

	n, err := c.OrderCount(context.Background(), "tok", backoffice.OrdersTotal, "h1")
	require.NoError(t, err)
	require.Equal(t, orders, n)
}

func TestClient_OrderCountPayloads(t *testing.T) {
	tests := []struct {
		body    string
		want    int
		wantErr error
	}{
		{body: `{"meta":{"page":1},"data":[{"id":1},{"id":2}]}`, want: 2},
		{body: `{"data":null}`, want: 0},
		{body: `{}`, want: 0},
		{body: `{"data":{"id":1}}`, wantErr: errors.ErrMalformedPayload},
		{body: `{"data":[1,2`, wantErr: errors.ErrMalformedPayload},
		{body: `[]`, wantErr: errors.ErrMalformedPayload},
		{body: `not json`, wantErr: errors.ErrMalformedPayload},
	}

	for _, tc := range tests {
		t.Run(tc.body, func(t *testing.T) {
			c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}), time.Second)

			n, err := c.OrderCount(context.Background(), "tok", backoffice.OrdersTotal, "h1")
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, n)
		})
	}
}

func TestClient_OrderCountTimeout(t *testing.T) {
	c := newClient(t, http.HandlerFunc(slowHandler), 50*time.Millisecond)
	_, err := c.OrderCount(context.Background(), "tok", backoffice.OrdersTotal, "h1")
	require.ErrorIs(t, err, errors.ErrTimeout)
}

func TestClient_ProfileTooLarge(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"blob":"` + strings.Repeat("x", 2<<20) + `"}}`))
	}), 5*time.Second)

	_, err := c.Profile(context.Background(), "tok", "h1")
	require.ErrorIs(t, err, errors.ErrPayloadTooLarge)
	require.NotErrorIs(t, err, errors.ErrMalformedPayload)
}
