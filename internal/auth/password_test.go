package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("12345")
	require.NoError(t, err)
	assert.NotEqual(t, "12345", hash)

	assert.NoError(t, h.Compare(hash, "12345"))
	assert.Error(t, h.Compare(hash, "54321"))
}

func TestBcryptHasher_SaltedHashes(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("12345")
	require.NoError(t, err)
	second, err := h.Hash("12345")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_InvalidCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(100).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
}
