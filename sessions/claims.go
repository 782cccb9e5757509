package sessions

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the registered claims readable from a JWT-shaped session token
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that has passed
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// InspectToken decodes the claims of a JWT without verifying its signature. The session
// token is opaque to this application: the claims are for display only and play no part
// in deciding whether a session is valid. ok is false for tokens that are not JWTs.
func InspectToken(token string) (claims TokenClaims, ok bool) {
	parsed, _, err := jwtlib.NewParser().ParseUnverified(token, jwtlib.MapClaims{})
	if err != nil {
		return TokenClaims{}, false
	}
	mapClaims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return TokenClaims{}, false
	}

	claims.Subject, _ = mapClaims.GetSubject()
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, true
}
