package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("wrong horse", hash))
}

func TestHashesDiffer(t *testing.T) {
	a, err := HashPassword("samepass")
	require.NoError(t, err)
	b, err := HashPassword("samepass")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.Error(t, ValidatePasswordStrength(""))
	assert.Error(t, ValidatePasswordStrength("short"))
	assert.Error(t, ValidatePasswordStrength(strings.Repeat("x", 73)))
	assert.NoError(t, ValidatePasswordStrength("six666"))
	assert.NoError(t, ValidatePasswordStrength(strings.Repeat("x", 72)))
}

func TestHashRejectsWeakPassword(t *testing.T) {
	_, err := HashPassword("abc")
	assert.Error(t, err)
}
