package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/graphql-go/graphql"

	"github.com/feidom-up/ai-feidom-graphl-worker/internal/api/middleware"
)

// NewRouter wires every endpoint and the shared middleware chain. The CORS
// and logging middleware wrap the router itself so they also cover the
// catch-all handler and preflight requests.
func NewRouter(schema graphql.Schema) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/graphql", HandlePlayground).Methods("GET")
	r.HandleFunc("/graphql", func(w http.ResponseWriter, req *http.Request) {
		HandleGraphQL(schema, w, req)
	}).Methods("POST")
	r.HandleFunc("/health", HandleHealth).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(HandleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(HandleNotFound)

	return middleware.RequestLogger(middleware.CORS(r))
}
