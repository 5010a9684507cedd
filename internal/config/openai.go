package config

import "github.com/rs/zerolog/log"

// GetOpenAIKey returns the configured OpenAI API key. An empty key is not
// fatal at startup; chat requests fail with a configuration error instead.
func GetOpenAIKey() string {
	value := GetEnvOrDefault("OPENAI_API_KEY", "")
	if value == "" {
		log.Warn().Msg("OPENAI_API_KEY environment variable not set - chat requests will fail")
	}
	return value
}
