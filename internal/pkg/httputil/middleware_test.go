package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerifier implements TokenVerifier for testing.
type stubVerifier struct {
	tokens map[string]string
}

func (s *stubVerifier) Verify(token string) (string, bool) {
	user, ok := s.tokens[token]
	return user, ok
}

func TestOptionalAuthMiddleware_NeverBlocks(t *testing.T) {
	verifier := &stubVerifier{tokens: map[string]string{"good-token": "alice"}}

	var gotUser string
	handler := OptionalAuthMiddleware(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = GetUser(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name     string
		header   string
		wantUser string
	}{
		{"no credential", "", ""},
		{"valid token", "Bearer good-token", "alice"},
		{"case-insensitive scheme", "bearer good-token", "alice"},
		{"unknown token", "Bearer bad-token", ""},
		{"malformed header", "good-token", ""},
		{"wrong scheme", "Basic good-token", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUser = "unset"

			req := httptest.NewRequest("GET", "/incidents", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			// Every request is served, with or without a resolvable identity.
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantUser, gotUser)
		})
	}
}

func TestThrottleMiddleware(t *testing.T) {
	handler := ThrottleMiddleware(1, 2)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/incidents", nil))
		codes = append(codes, rec.Code)
	}

	// Burst of 2 passes, the rest are rejected.
	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
	assert.Equal(t, http.StatusTooManyRequests, codes[3])
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	handler := CORSMiddleware([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/incidents", nil)
	req.Header.Set("Origin", "https://example.com")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	handler := CORSMiddleware([]string{"https://allowed.example"})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/incidents", nil)
	req.Header.Set("Origin", "https://other.example")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "CORS never blocks the request itself")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
