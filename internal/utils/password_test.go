package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-passphrase", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-passphrase", hash)

	assert.True(t, VerifyPassword(hash, "s3cret-passphrase"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}

func TestPasswordHashesAreSalted(t *testing.T) {
	a, err := HashPassword("same-input", 4)
	require.NoError(t, err)
	b, err := HashPassword("same-input", 4)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
