package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) JWTClient {
	t.Helper()
	client, err := New(
		WithAccessTokenSecret("access-secret"),
		WithSignInTokenSecret("signin-secret"),
	)
	require.NoError(t, err)
	return client
}

func TestNew_RequiresSecrets(t *testing.T) {
	_, err := New(WithSignInTokenSecret("signin-secret"))
	require.Error(t, err)
	assert.Equal(t, ErrAccessTokenSecretRequired, err.Error())

	_, err = New(WithAccessTokenSecret("access-secret"))
	require.Error(t, err)
	assert.Equal(t, ErrSignInTokenSecretRequired, err.Error())
}

func TestAccessToken_RoundTrip(t *testing.T) {
	client := newTestClient(t)

	token, err := client.GenerateAccessToken("user-1", "empresa-1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := client.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "empresa-1", claims.CompanyID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, DefaultIssuer, claims.Issuer)
}

func TestSignInToken_RoundTrip(t *testing.T) {
	client := newTestClient(t)

	token, err := client.GenerateSignInToken("user-1", "empresa-2")
	require.NoError(t, err)

	claims, err := client.ValidateSignInToken(token)
	require.NoError(t, err)
	assert.Equal(t, "empresa-2", claims.CompanyID)
	assert.Equal(t, TokenTypeSignIn, claims.TokenType)
}

func TestValidate_RejectsWrongTokenType(t *testing.T) {
	client, err := New(
		WithAccessTokenSecret("same-secret"),
		WithSignInTokenSecret("same-secret"),
	)
	require.NoError(t, err)

	// Signed with the shared secret but carrying the wrong type claim
	access, err := client.GenerateAccessToken("user-1", "empresa-1", "admin")
	require.NoError(t, err)

	_, err = client.ValidateSignInToken(access)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidTokenType, err.Error())
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	client := newTestClient(t)
	other, err := New(
		WithAccessTokenSecret("different-secret"),
		WithSignInTokenSecret("different-signin"),
	)
	require.NoError(t, err)

	token, err := client.GenerateAccessToken("user-1", "empresa-1", "admin")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidate_RejectsExpiredToken(t *testing.T) {
	client, err := New(
		WithAccessTokenSecret("access-secret"),
		WithSignInTokenSecret("signin-secret"),
		WithSignInTokenExpiry(-time.Minute),
	)
	require.NoError(t, err)

	token, err := client.GenerateSignInToken("user-1", "empresa-1")
	require.NoError(t, err)

	_, err = client.ValidateSignInToken(token)
	assert.Error(t, err, "expired sign-in token must be rejected")
}
