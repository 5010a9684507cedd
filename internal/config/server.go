package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// GetServerPort returns the port the HTTP server listens on
func GetServerPort() string {
	return GetEnvOrDefault("PORT", "8080")
}

// GetLogLevel returns the zerolog level selected via LOG_LEVEL
func GetLogLevel() zerolog.Level {
	switch strings.ToUpper(GetEnvOrDefault("LOG_LEVEL", "INFO")) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
