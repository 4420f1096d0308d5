package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims.
type Claims struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager mints and validates bearer tokens for a subject/role pair.
type TokenManager struct {
	secret            []byte
	expirationMinutes int
}

// NewTokenManager creates a TokenManager signing with the given secret.
func NewTokenManager(secret string, expirationMinutes int) *TokenManager {
	return &TokenManager{secret: []byte(secret), expirationMinutes: expirationMinutes}
}

// Generate creates a signed token for the subject identifier and role.
func (m *TokenManager) Generate(subject, role string) (string, error) {
	expirationTime := time.Now().Add(time.Duration(m.expirationMinutes) * time.Minute)
	claims := &Claims{
		Subject: subject,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Validate parses and verifies a token, returning its claims.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
