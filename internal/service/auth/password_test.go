package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier_Compare(t *testing.T) {
	verifier := NewBcryptVerifier()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, verifier.Compare(string(hash), "password123"))
	assert.Error(t, verifier.Compare(string(hash), "wrongpassword"))
	assert.Error(t, verifier.Compare("not-a-hash", "password123"))
}
