package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, version, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, HashVersionBcrypt, version)

	assert.NoError(t, VerifyPassword(hash, "correct horse battery"))
	assert.Error(t, VerifyPassword(hash, "Correct horse battery"))
}

func TestHashPasswordRejectsShort(t *testing.T) {
	_, _, err := HashPassword("short")
	assert.Error(t, err)
}
