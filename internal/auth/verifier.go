// Package auth provides the demo bearer-token capability check.
package auth

// Verifier checks tokens against a fixed allow-list mapping token strings to
// user identities. This is a demonstration fixture: there is no expiry, no
// signing, and the check never gates access to any endpoint.
type Verifier struct {
	tokens map[string]string
}

// NewVerifier creates a verifier from a token -> user mapping.
// The map is copied; later mutation of the argument has no effect.
func NewVerifier(tokens map[string]string) *Verifier {
	allowed := make(map[string]string, len(tokens))
	for token, user := range tokens {
		allowed[token] = user
	}
	return &Verifier{tokens: allowed}
}

// Verify returns the user identity for token, or ok=false for unknown tokens.
func (v *Verifier) Verify(token string) (string, bool) {
	user, ok := v.tokens[token]
	return user, ok
}
