package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	portEnvVar          = "PORT"
	appNameVar          = "APP_NAME"
	envVar              = "ENV"
	logLevelVar         = "LOG_LEVEL"
	apiBaseURLVar       = "API_BASE_URL"
	publicAPIBaseURLVar = "NEXT_PUBLIC_API_BASE_URL"

	defaultAPIBaseURL = "http://localhost:3001"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Hotel Backoffice")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv(envVar)
	if env == "" {
		return "DEV"
	}
	return env
}

// GetAPIBaseURL returns the backend origin. API_BASE_URL takes precedence over
// NEXT_PUBLIC_API_BASE_URL; the result never ends with a slash.
func (EnvVars) GetAPIBaseURL() string {
	baseURL := GetEnv(apiBaseURLVar, GetEnv(publicAPIBaseURLVar, defaultAPIBaseURL))
	return strings.TrimRight(baseURL, "/")
}

func (EnvVars) GetLogLevel() string {
	return strings.ToLower(GetEnv(logLevelVar, "info"))
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the integer value of envVar, or defaultValue when unset or not a
// positive integer.
func GetEnvInt(envVar string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(envVar))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
