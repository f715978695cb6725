package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	token := "n8n-internal-token-value"
	hash, err := hasher.Hash(token)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, token, hash)

	assert.True(t, hasher.Check(token, hash))
	assert.False(t, hasher.Check("wrong-token", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(token, "not-a-bcrypt-hash"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("same-secret")
	require.NoError(t, err)
	second, err := hasher.Hash("same-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-secret", first))
	assert.True(t, hasher.Check("same-secret", second))
}
