package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

const (
	// Error messages
	ErrAccessTokenSecretRequired = "access token secret is required"
	ErrSignInTokenSecretRequired = "sign-in token secret is required"
	ErrInvalidTokenType          = "invalid token type"
	ErrInvalidToken              = "invalid token"
)

// JWTClient defines the interface for token operations
type JWTClient interface {
	GenerateAccessToken(userID, companyID, role string) (string, error)
	ValidateAccessToken(tokenString string) (*TokenClaims, error)
	GenerateSignInToken(userID, companyID string) (string, error)
	ValidateSignInToken(tokenString string) (*TokenClaims, error)
	GetConfig() TokenConfig
}

// Client implements JWTClient with HMAC-signed tokens
type Client struct {
	config TokenConfig
}

// New creates a new JWT client with the provided options
func New(opts ...Option) (JWTClient, error) {
	client := &Client{
		config: DefaultConfig(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.config.AccessTokenSecret == "" {
		return nil, errors.New(ErrAccessTokenSecretRequired)
	}
	if client.config.SignInTokenSecret == "" {
		return nil, errors.New(ErrSignInTokenSecretRequired)
	}

	return client, nil
}

// generate mints a token of the given type signed with the given secret
func (c *Client) generate(userID, companyID, role, tokenType, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        ulid.Make().String(),
			Issuer:    c.config.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// validate parses a token, checks its signature and type, and returns the claims
func (c *Client) validate(tokenString, tokenType, secret string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New(ErrInvalidToken)
	}

	if claims.TokenType != tokenType {
		return nil, errors.New(ErrInvalidTokenType)
	}

	return claims, nil
}

// GenerateAccessToken mints an API access token for a user
func (c *Client) GenerateAccessToken(userID, companyID, role string) (string, error) {
	return c.generate(userID, companyID, role, TokenTypeAccess, c.config.AccessTokenSecret, c.config.AccessTokenExpiry)
}

// ValidateAccessToken validates an API access token and returns its claims
func (c *Client) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	return c.validate(tokenString, TokenTypeAccess, c.config.AccessTokenSecret)
}

// GenerateSignInToken mints a short-lived token for a magic sign-in link
// The token is scoped to the target company
func (c *Client) GenerateSignInToken(userID, companyID string) (string, error) {
	return c.generate(userID, companyID, "", TokenTypeSignIn, c.config.SignInTokenSecret, c.config.SignInTokenExpiry)
}

// ValidateSignInToken validates a sign-in link token and returns its claims
func (c *Client) ValidateSignInToken(tokenString string) (*TokenClaims, error) {
	return c.validate(tokenString, TokenTypeSignIn, c.config.SignInTokenSecret)
}

// GetConfig returns the token configuration
func (c *Client) GetConfig() TokenConfig {
	return c.config
}
