package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog/log"

	"github.com/feidom-up/ai-feidom-graphl-worker/pkg/httpext"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// HandleGraphQL executes a POSTed GraphQL request against the schema.
// A body that is not valid JSON, or a panic out of the execution engine,
// yields HTTP 400 with an error envelope; resolver failures come back as
// entries of the normal GraphQL error array with HTTP 200.
func HandleGraphQL(schema graphql.Schema, w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Str("client_ip", r.RemoteAddr).Msg("Client sent malformed JSON request")
		httpext.GraphQLError(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Msg("GraphQL execution panicked")
			httpext.GraphQLError(w, fmt.Sprintf("GraphQL execution failed: %v", rec), http.StatusBadRequest)
		}
	}()

	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	if len(result.Errors) > 0 {
		log.Warn().Str("client_ip", r.RemoteAddr).Interface("errors", result.Errors).Msg("GraphQL request completed with errors")
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Error().Err(err).Msg("Failed to encode GraphQL response")
	}
}
