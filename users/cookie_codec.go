package users

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// EncodeCookie renders the user as percent-encoded JSON, safe to store in a cookie value.
func EncodeCookie(u User) (string, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return "", fmt.Errorf("[users EncodeCookie] %w", err)
	}
	return url.QueryEscape(string(raw)), nil
}

// DecodeCookie reverses EncodeCookie.
func DecodeCookie(value string) (User, error) {
	raw, err := url.QueryUnescape(value)
	if err != nil {
		return User{}, fmt.Errorf("[users DecodeCookie] unescape: %w", err)
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return User{}, fmt.Errorf("[users DecodeCookie] %w", err)
	}
	return u, nil
}
