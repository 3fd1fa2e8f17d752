package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifier(t *testing.T) {
	v := NewVerifier(map[string]string{"demo-token-123": "demo_user"})

	user, ok := v.Verify("demo-token-123")
	assert.True(t, ok)
	assert.Equal(t, "demo_user", user)

	user, ok = v.Verify("wrong-token")
	assert.False(t, ok)
	assert.Empty(t, user)
}

func TestVerifier_CopiesTokenMap(t *testing.T) {
	tokens := map[string]string{"t": "u"}
	v := NewVerifier(tokens)

	tokens["injected"] = "attacker"

	_, ok := v.Verify("injected")
	assert.False(t, ok)
}
