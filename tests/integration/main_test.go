//go:build integration

package integration

import (
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/InfoSecLos/soar-incident-mock-api-simulator/internal/app"
	"github.com/InfoSecLos/soar-incident-mock-api-simulator/internal/config"
	"github.com/InfoSecLos/soar-incident-mock-api-simulator/internal/testutil"
	"github.com/stretchr/testify/require"
)

// OpenAPI spec path relative to the tests/integration directory.
const openAPISpecPath = "../../api/openapi/openapi.yaml"

// demoToken is the default allow-listed token from config.Default.
const demoToken = "demo-token-123"

var testValidator *testutil.OpenAPIValidator

func TestMain(m *testing.M) {
	v, err := testutil.LoadOpenAPIValidator(openAPISpecPath)
	if err != nil {
		log.Fatalf("load OpenAPI validator: %v", err)
	}
	testValidator = v

	os.Exit(m.Run())
}

// newTestServer starts a fresh application for one test. The store lives in
// process memory, so isolation between tests is just a new App with the
// fixed seed dataset.
func newTestServer(t *testing.T) *testutil.Client {
	t.Helper()

	cfg := config.Default()
	cfg.Log = config.LogConfig{Level: "error", Format: "text"}

	application, err := app.New(cfg)
	require.NoError(t, err)

	server := httptest.NewServer(application.Router())
	t.Cleanup(server.Close)

	client := testutil.NewClientWithValidator(server.URL, testValidator)
	client.SetT(t)
	return client
}
