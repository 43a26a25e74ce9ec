package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "test-signing-key")
	mgr := NewJWTManager(TokenTypeApp)

	token, err := mgr.GenerateToken(42, 1)
	require.NoError(t, err)

	claims, err := mgr.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UID)
	assert.Equal(t, 1, claims.Status)
	assert.Equal(t, "anke-go-api-app", claims.Issuer)
}

func TestParseExpiredToken(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "test-signing-key")
	mgr := NewJWTManager(TokenTypeApp)

	token, err := mgr.GenerateToken(1, 1, -time.Minute)
	require.NoError(t, err)

	_, err = mgr.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseMalformedToken(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "test-signing-key")
	mgr := NewJWTManager(TokenTypeAdmin)

	_, err := mgr.ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseRejectsForeignKey(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "key-one")
	token, err := NewJWTManager(TokenTypeApp).GenerateToken(1, 1)
	require.NoError(t, err)

	t.Setenv("JWT_SIGNING_KEY", "key-two")
	_, err = NewJWTManager(TokenTypeApp).ParseToken(token)
	assert.Error(t, err)
}

func TestExtractUID(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "test-signing-key")
	mgr := NewJWTManager(TokenTypeApp)

	token, err := mgr.GenerateToken(7, 2)
	require.NoError(t, err)

	uid, err := mgr.ExtractUID(token)
	require.NoError(t, err)
	assert.Equal(t, 7, uid)
}
