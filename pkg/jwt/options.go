package jwt

import "time"

// Option is a function that configures a Client
type Option func(*Client)

// WithAccessTokenSecret sets the access token signing secret
func WithAccessTokenSecret(secret string) Option {
	return func(c *Client) {
		c.config.AccessTokenSecret = secret
	}
}

// WithSignInTokenSecret sets the sign-in link token signing secret
func WithSignInTokenSecret(secret string) Option {
	return func(c *Client) {
		c.config.SignInTokenSecret = secret
	}
}

// WithAccessTokenExpiry sets the access token lifetime
func WithAccessTokenExpiry(expiry time.Duration) Option {
	return func(c *Client) {
		c.config.AccessTokenExpiry = expiry
	}
}

// WithSignInTokenExpiry sets the sign-in link token lifetime
func WithSignInTokenExpiry(expiry time.Duration) Option {
	return func(c *Client) {
		c.config.SignInTokenExpiry = expiry
	}
}

// WithIssuer sets the iss claim for minted tokens
func WithIssuer(issuer string) Option {
	return func(c *Client) {
		c.config.Issuer = issuer
	}
}
