package httpext

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrorEntry is a single entry of a GraphQL error array
type ErrorEntry struct {
	Message string `json:"message"`
}

// ErrorEnvelope is the GraphQL-style error response body
type ErrorEnvelope struct {
	Errors []ErrorEntry `json:"errors"`
}

// GraphQLError writes a GraphQL error envelope with the specified status code
func GraphQLError(w http.ResponseWriter, message string, code int) {
	response := ErrorEnvelope{
		Errors: []ErrorEntry{{Message: message}},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("Failed to encode error response")
		// Fallback to writing JSON body as plain text if JSON encoding fails
		http.Error(w, `{"errors":[{"message":"Internal Server Error"}]}`, http.StatusInternalServerError)
		return
	}
}
