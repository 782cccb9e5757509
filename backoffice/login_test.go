package backoffice_test

import (
	"testing"

	"github.com/jrsteele09/go-backoffice/backoffice"
	"github.com/jrsteele09/go-backoffice/internal/errors"
	"github.com/jrsteele09/go-backoffice/internal/utils"
	"github.com/jrsteele09/go-backoffice/users"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLogin(t *testing.T) {
	const email = "login@hotel.test"

	tests := []struct {
		name      string
		body      string
		wantToken string
		wantUser  users.User
		wantErr   error
	}{
		{
			name:      "tokenJWT with hotel_id",
			body:      `{"tokenJWT":"jwt","hotel_id":"h1","name":"Front Desk","hotel_name":"Grand"}`,
			wantToken: "jwt",
			wantUser:  users.User{Email: email, Name: "Front Desk", Role: users.RoleHotels, HotelID: "h1", HotelName: utils.Ptr("Grand")},
		},
		{
			name:      "tokenJWT names from first and last name",
			body:      `{"tokenJWT":"jwt","hotel_id":5,"firstname":"Nok","lastname":"","role":"attraction","email":"nok@museum.test"}`,
			wantToken: "jwt",
			wantUser:  users.User{Email: "nok@museum.test", Name: "Nok", Role: users.RoleAttraction, HotelID: "5"},
		},
		{
			name:      "token with user",
			body:      `{"token":"t2","user":{"email":"u@hotel.test","hotel_id":"h2","role":"developer","name":"Dev"}}`,
			wantToken: "t2",
			wantUser:  users.User{Email: "u@hotel.test", Name: "Dev", Role: users.RoleDeveloper, HotelID: "h2"},
		},
		{
			name:      "token with user keeps record as sent",
			body:      `{"token":"t2","user":{"name":"No Email"}}`,
			wantToken: "t2",
			wantUser:  users.User{Name: "No Email"},
		},
		{
			name:      "token with hotel_id",
			body:      `{"token":"t3","hotel_id":"h3"}`,
			wantToken: "t3",
			wantUser:  users.User{Email: email, Role: users.RoleHotels, HotelID: "h3"},
		},
		{
			name:      "tokenJWT shape wins over token shapes",
			body:      `{"tokenJWT":"first","token":"second","hotel_id":"h1","user":{"email":"x@y.z","hotel_id":"other"}}`,
			wantToken: "first",
			wantUser:  users.User{Email: email, Role: users.RoleHotels, HotelID: "h1"},
		},
		{
			name:      "user shape wins over token with hotel_id",
			body:      `{"token":"t","hotel_id":"flat","user":{"email":"x@y.z","hotel_id":"nested"}}`,
			wantToken: "t",
			wantUser:  users.User{Email: "x@y.z", HotelID: "nested"},
		},
		{
			name:    "tokenJWT without hotel_id",
			body:    `{"tokenJWT":"jwt"}`,
			wantErr: errors.ErrUnexpectedLoginResponse,
		},
		{
			name:    "token alone",
			body:    `{"token":"t"}`,
			wantErr: errors.ErrUnexpectedLoginResponse,
		},
		{
			name:    "not an object",
			body:    `[1,2]`,
			wantErr: errors.ErrUnexpectedLoginResponse,
		},
		{
			name:    "null",
			body:    `null`,
			wantErr: errors.ErrUnexpectedLoginResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := backoffice.NormalizeLogin([]byte(tt.body), email)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantToken, res.Token)
			require.Equal(t, tt.wantUser, res.User)
		})
	}
}
