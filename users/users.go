package users

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/jrsteele09/go-backoffice/internal/utils"
)

// Role decides which parts of the back office a user can reach
type Role string

const (
	RoleHotels     Role = "hotels"     // Hotel staff: rooms, room types, stock, orders
	RoleAttraction Role = "attraction" // Museum/attraction staff
	RoleDeveloper  Role = "developer"  // Sees everything hotels and attraction users see
)

// JSON keys of the typed fields. Everything else lands in User.Extra.
const (
	KeyEmail     = "email"
	KeyName      = "name"
	KeyRole      = "role"
	KeyHotelID   = "hotel_id"
	KeyHotelName = "hotel_name"
)

// User is the profile of the signed-in back-office account as kept in the session.
type User struct {
	Email     string         // Login e-mail
	Name      string         // Display name
	Role      Role           // Access role
	HotelID   string         // Hotel (or attraction) the account belongs to
	HotelName *string        // Optional, usually filled by a profile refresh
	Extra     map[string]any // Any further profile fields returned by the backend
}

// IsComplete reports whether the record carries the fields a session needs.
func (u User) IsComplete() bool {
	return u.Email != "" && u.HotelID != ""
}

// DisplayName returns the name, falling back to the e-mail address
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Clone returns a deep copy so callers cannot mutate session-owned data.
func (u User) Clone() User {
	c := u
	if u.HotelName != nil {
		c.HotelName = utils.Ptr(*u.HotelName)
	}
	if u.Extra != nil {
		c.Extra = maps.Clone(u.Extra)
	}
	return c
}

// Merge shallow-merges backend profile fields into the user. The merge is additive: nil
// values are skipped and the identity fields (email, hotel_id) are never blanked.
func (u *User) Merge(fields map[string]any) {
	for k, v := range fields {
		if v == nil {
			continue
		}
		switch k {
		case KeyEmail:
			if s, ok := utils.ToString(v); ok && s != "" {
				u.Email = s
			}
		case KeyHotelID:
			if s, ok := utils.ToString(v); ok && s != "" {
				u.HotelID = s
			}
		case KeyName:
			if s, ok := v.(string); ok {
				u.Name = s
			}
		case KeyRole:
			if s, ok := v.(string); ok {
				u.Role = Role(s)
			}
		case KeyHotelName:
			if s, ok := utils.ToString(v); ok {
				u.HotelName = utils.Ptr(s)
			}
		default:
			if u.Extra == nil {
				u.Extra = make(map[string]any)
			}
			u.Extra[k] = v
		}
	}
}

func (u User) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(u.Extra)+5)
	for k, v := range u.Extra {
		m[k] = v
	}
	m[KeyEmail] = u.Email
	m[KeyHotelID] = u.HotelID
	if u.Name != "" {
		m[KeyName] = u.Name
	}
	if u.Role != "" {
		m[KeyRole] = string(u.Role)
	}
	if u.HotelName != nil {
		m[KeyHotelName] = *u.HotelName
	}
	return json.Marshal(m)
}

func (u *User) UnmarshalJSON(data []byte) error {
	fields, err := DecodeFields(data)
	if err != nil {
		return err
	}
	if fields == nil {
		return fmt.Errorf("user record is null")
	}
	*u = User{}
	u.Merge(fields)
	return nil
}

// DecodeFields decodes a JSON object into a field map. Numbers are kept as json.Number so large
// identifiers survive a round trip through User.Extra.
func DecodeFields(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("[users DecodeFields] %w", err)
	}
	return fields, nil
}
