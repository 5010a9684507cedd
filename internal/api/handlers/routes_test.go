package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	schema := testSchema(t, &stubChatService{})
	server := httptest.NewServer(NewRouter(schema))
	t.Cleanup(server.Close)
	return server
}

func TestRouterEndpoints(t *testing.T) {
	server := newTestServer(t)

	t.Run("health endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

		var body struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ok", body.Status)
	})

	t.Run("playground on GET /graphql", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/graphql")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	})

	t.Run("unknown path lists endpoints", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/nope")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

		var listing struct {
			Endpoints map[string]string `json:"endpoints"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
		assert.Contains(t, listing.Endpoints, "POST /graphql")
		assert.Contains(t, listing.Endpoints, "GET /health")
	})

	t.Run("unknown method lists endpoints", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, server.URL+"/health", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var listing struct {
			Endpoints map[string]string `json:"endpoints"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
		assert.NotEmpty(t, listing.Endpoints)
	})

	t.Run("preflight returns empty 200", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, server.URL+"/graphql", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Empty(t, body)
		assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type, Authorization", resp.Header.Get("Access-Control-Allow-Headers"))
	})
}
