package jwt

import "time"

// TokenConfig holds the token signing configuration
type TokenConfig struct {
	// AccessTokenSecret signs API access tokens
	AccessTokenSecret string
	// SignInTokenSecret signs one-shot CRM sign-in link tokens
	SignInTokenSecret string
	// AccessTokenExpiry is the lifetime of an access token
	AccessTokenExpiry time.Duration
	// SignInTokenExpiry is the lifetime of a sign-in link token
	SignInTokenExpiry time.Duration
	// Issuer is the iss claim on minted tokens
	Issuer string
}

// DefaultConfig returns the default token configuration without secrets
func DefaultConfig() TokenConfig {
	return TokenConfig{
		AccessTokenExpiry: 15 * time.Minute,
		SignInTokenExpiry: 5 * time.Minute,
		Issuer:            DefaultIssuer,
	}
}

// NewWithConfig creates a new JWT client from a config struct
func NewWithConfig(config TokenConfig) (JWTClient, error) {
	opts := []Option{
		WithAccessTokenSecret(config.AccessTokenSecret),
		WithSignInTokenSecret(config.SignInTokenSecret),
	}

	if config.AccessTokenExpiry > 0 {
		opts = append(opts, WithAccessTokenExpiry(config.AccessTokenExpiry))
	}

	if config.SignInTokenExpiry > 0 {
		opts = append(opts, WithSignInTokenExpiry(config.SignInTokenExpiry))
	}

	if config.Issuer != "" {
		opts = append(opts, WithIssuer(config.Issuer))
	}

	return New(opts...)
}
