package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
)

// DecodeJSON decodes a JSON response body into v and closes the body.
func DecodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode response body %q: %v", body, err)
	}
}

// RandomTitle returns a unique incident title with the given prefix, so
// concurrent tests never collide on titles.
func RandomTitle(prefix string) string {
	return prefix + " " + uuid.NewString()[:8]
}
