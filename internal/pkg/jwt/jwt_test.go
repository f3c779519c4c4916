package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(7, "ana@permisos.cl", "Ana Soto", "COORDINADOR", 3, testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.WorkerID)
	assert.Equal(t, "ana@permisos.cl", claims.Email)
	assert.Equal(t, "Ana Soto", claims.FullName)
	assert.Equal(t, "COORDINADOR", claims.Role)
	assert.Equal(t, uint(3), claims.AreaID)
	assert.Equal(t, "permitdesk", claims.Issuer)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(7, "ana@permisos.cl", "Ana Soto", "TRABAJADOR", 3, testSecret, 15)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "another-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken(7, "ana@permisos.cl", "Ana Soto", "TRABAJADOR", 3, testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAccessTokenGarbage(t *testing.T) {
	_, err := ValidateAccessToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(7, "token-id-1", testSecret, 7)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.WorkerID)
	assert.Equal(t, "token-id-1", claims.TokenID)
}

func TestRefreshTokenNotValidAsAccessClaims(t *testing.T) {
	refresh, err := GenerateRefreshToken(7, "token-id-1", testSecret, 7)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(refresh, testSecret)
	require.NoError(t, err)
	// A refresh token parsed as access claims carries no identity fields
	assert.Empty(t, claims.Email)
	assert.Empty(t, claims.Role)
}

func TestRefreshTokenExpired(t *testing.T) {
	token, err := GenerateRefreshToken(7, "token-id-1", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateRefreshToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
