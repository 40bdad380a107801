package cli_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaraujo/ssbctl/pkg/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCarriesBasicAuthAndHeaders(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "supersecret1", pass)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "/api/v2/projects", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": "p1", "name": "sales"}]`))
	}))
	defer server.Close()

	// trailing slash on the base URL must not double up in request paths
	api := cli.NewAPIClient(server.URL+"/", "admin", "supersecret1")

	var projects []map[string]string
	require.NoError(t, api.Get("/api/v2/projects", &projects))
	assert.Equal(t, []map[string]string{{"id": "p1", "name": "sales"}}, projects)
}

func TestPutSendsJSONBody(t *testing.T) {
	var received map[string]any
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	api := cli.NewAPIClient(server.URL, "admin", "supersecret1")

	resp, err := api.Put("/api/v2/projects/p1/jobs/j1", map[string]any{"sql": "SELECT 1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"sql": "SELECT 1"}, received)
}

func TestPostToleratesListedStatusCodes(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "still starting"}`))
	}))
	defer server.Close()

	api := cli.NewAPIClient(server.URL, "admin", "supersecret1")

	resp, err := api.Post("/api/v2/projects/p1/jobs/j1/execute", nil, http.StatusOK, http.StatusInternalServerError)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"message": "still starting"}`, string(resp.Body))
}

func TestUnexpectedStatusYieldsTypedError(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "no such job"}`))
	}))
	defer server.Close()

	api := cli.NewAPIClient(server.URL, "admin", "supersecret1")

	_, err := api.Post("/api/v2/projects/p1/jobs/j1/stop", map[string]any{"savepoint": false})

	var unexpected *cli.UnexpectedResponseError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, http.MethodPost, unexpected.Method)
	assert.Equal(t, server.URL+"/api/v2/projects/p1/jobs/j1/stop", unexpected.URL)
	assert.Equal(t, http.StatusNotFound, unexpected.StatusCode)
	assert.Contains(t, unexpected.Body, "no such job")
}
