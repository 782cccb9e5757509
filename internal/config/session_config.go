package config

import "time"

type SessionConfig interface {
	GetSessionCookieDays() int
	GetSecureCookies() bool
	GetProfileCacheTTL() time.Duration
	GetProfileCacheSize() int
}

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetSessionCookieDays() int {
	return 1
}

// GetSecureCookies reports whether cookies carry the Secure flag. Local development runs on
// plain http.
func (Session) GetSecureCookies() bool {
	return EnvVars{}.GetEnv() != "DEV"
}

func (Session) GetProfileCacheTTL() time.Duration {
	return time.Duration(GetEnvInt("PROFILE_CACHE_TTL_SECONDS", 300)) * time.Second
}

func (Session) GetProfileCacheSize() int {
	return 1024
}
