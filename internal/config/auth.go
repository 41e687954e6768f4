package config

import (
	"strconv"
	"time"

	"gym_manager/internal/auth"
)

// JWTSecret returns the token signing key.
func JWTSecret() string {
	return getEnv("JWT_SECRET", "gym-manager")
}

// TokenTTL returns the session lifetime, JWT_EXPIRATION_HOURS or 5 days.
func TokenTTL() time.Duration {
	raw := getEnv("JWT_EXPIRATION_HOURS", "")
	if raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return auth.DefaultTokenTTL
}

// ServerAddr returns the listen address for the HTTP server.
func ServerAddr() string {
	return getEnv("SERVER_ADDR", "0.0.0.0:8080")
}
