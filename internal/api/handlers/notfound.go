package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type endpointListing struct {
	Service   string            `json:"service"`
	Endpoints map[string]string `json:"endpoints"`
}

// HandleNotFound answers any unmatched path or method with a description
// of the available endpoints.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("Unmatched request")

	response := endpointListing{
		Service: "GraphQL OpenAI proxy",
		Endpoints: map[string]string{
			"GET /graphql":  "Interactive query console",
			"POST /graphql": "Execute a GraphQL query or mutation",
			"GET /health":   "Service health check",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("Failed to encode endpoint listing")
	}
}
