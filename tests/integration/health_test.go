//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/InfoSecLos/soar-incident-mock-api-simulator/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthReportsIncidentCount(t *testing.T) {
	client := newTestServer(t)

	var health struct {
		Status         string `json:"status"`
		TotalIncidents int    `json:"total_incidents"`
		APIVersion     string `json:"api_version"`
	}

	resp, err := client.GET("/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeJSON(t, resp, &health)

	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 3, health.TotalIncidents)
	assert.Equal(t, "2.0", health.APIVersion)

	// The reported total tracks mutations.
	resp, err = client.DELETE("/incidents/1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = client.GET("/health")
	require.NoError(t, err)
	testutil.DecodeJSON(t, resp, &health)
	assert.Equal(t, 2, health.TotalIncidents)
}

func TestRootWelcomeDocument(t *testing.T) {
	client := newTestServer(t)

	resp, err := client.GET("/")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var root struct {
		Message   string            `json:"message"`
		Docs      string            `json:"docs"`
		Endpoints map[string]string `json:"endpoints"`
	}
	testutil.DecodeJSON(t, resp, &root)

	assert.Equal(t, "SOAR Incident Mock API Simulator", root.Message)
	assert.Equal(t, "/docs", root.Docs)
	assert.Contains(t, root.Endpoints, "list_incidents")
}

func TestVersionEndpoint(t *testing.T) {
	client := newTestServer(t)

	resp, err := client.GET("/version")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Version string `json:"version"`
		Commit  string `json:"commit"`
	}
	testutil.DecodeJSON(t, resp, &body)
	assert.NotEmpty(t, body.Version)
}
