package backoffice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-backoffice/internal/errors"
	"github.com/jrsteele09/go-backoffice/internal/utils"
	"github.com/jrsteele09/go-backoffice/users"
)

// LoginResult is a successful login normalised to a single shape
type LoginResult struct {
	Token string
	User  users.User
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login submits credentials and normalises the answer with NormalizeLogin.
// Rejected credentials surface as errors.ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	resp, err := c.do(ctx, c.config.GetLoginTimeout(), "Login", http.MethodPost, PathLogin, "", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return LoginResult{}, err
	}

	switch {
	case resp.status == http.StatusBadRequest, resp.status == http.StatusUnauthorized, resp.status == http.StatusForbidden:
		return LoginResult{}, fmt.Errorf("[backoffice Login] %w: %s", errors.ErrInvalidCredentials, backendMessage(resp.body))
	case !resp.ok():
		return LoginResult{}, statusError("Login", resp.status)
	}

	return NormalizeLogin(resp.body, email)
}

// NormalizeLogin accepts the three payload shapes the backend answers with. The first
// matching shape wins:
//
//  1. {"tokenJWT", "hotel_id", "firstname", "lastname", "name", ...}
//  2. {"token", "user": {...}}
//  3. {"token", "hotel_id", ...}
//
// For the flat shapes the user e-mail defaults to the one used to log in.
func NormalizeLogin(body []byte, email string) (LoginResult, error) {
	fields, err := users.DecodeFields(body)
	if err != nil || fields == nil {
		return LoginResult{}, fmt.Errorf("[backoffice NormalizeLogin] %w", errors.ErrUnexpectedLoginResponse)
	}

	str := func(key string) string {
		s, _ := utils.ToString(fields[key])
		return s
	}

	if token, hotelID := str("tokenJWT"), str(users.KeyHotelID); token != "" && hotelID != "" {
		return LoginResult{Token: token, User: flatUser(fields, email)}, nil
	}

	if token := str("token"); token != "" {
		if nested, ok := fields["user"].(map[string]any); ok {
			var u users.User
			u.Merge(nested)
			return LoginResult{Token: token, User: u}, nil
		}
		if str(users.KeyHotelID) != "" {
			return LoginResult{Token: token, User: flatUser(fields, email)}, nil
		}
	}

	return LoginResult{}, fmt.Errorf("[backoffice NormalizeLogin] %w", errors.ErrUnexpectedLoginResponse)
}

func flatUser(fields map[string]any, email string) users.User {
	str := func(key string) string {
		s, _ := utils.ToString(fields[key])
		return s
	}

	u := users.User{
		Email:   str(users.KeyEmail),
		Name:    str(users.KeyName),
		Role:    users.Role(str(users.KeyRole)),
		HotelID: str(users.KeyHotelID),
	}
	if u.Email == "" {
		u.Email = email
	}
	if u.Name == "" {
		u.Name = strings.TrimSpace(str("firstname") + " " + str("lastname"))
	}
	if u.Role == "" {
		u.Role = users.RoleHotels
	}
	if name := str(users.KeyHotelName); name != "" {
		u.HotelName = utils.Ptr(name)
	}
	return u
}

// backendMessage extracts {"message": "..."} from an error body when present
func backendMessage(body []byte) string {
	var msg struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &msg); err != nil {
		return ""
	}
	if msg.Message != "" {
		return msg.Message
	}
	return msg.Error
}
