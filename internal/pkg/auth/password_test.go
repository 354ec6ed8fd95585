package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("senha-secreta")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "senha-secreta", hash)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("senha-secreta")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "senha-secreta"))
	assert.False(t, CheckPassword(hash, "senha-errada"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("mesma-senha")
	require.NoError(t, err)
	second, err := HashPassword("mesma-senha")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
