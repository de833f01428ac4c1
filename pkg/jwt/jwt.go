package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in a CRM token
type TokenClaims struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"empresa_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

const (
	// Token types
	TokenTypeAccess = "access"
	TokenTypeSignIn = "signin"

	// DefaultIssuer identifies tokens minted by this service
	DefaultIssuer = "travel-crm-service"
)
