// Package token provides JWT access and refresh token handling.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Type distinguishes access tokens from refresh tokens.
type Type string

const (
	TypeAccess  Type = "access"
	TypeRefresh Type = "refresh"
)

// Claims represents JWT claims carried by both token kinds.
type Claims struct {
	UserID    string `json:"user_id"`
	TokenType Type   `json:"token_type"`
	jwt.RegisteredClaims
}

// Manager handles JWT generation and validation.
type Manager struct {
	secret        []byte
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// Config holds token manager configuration.
type Config struct {
	Secret        string
	Issuer        string
	AccessExpiry  time.Duration // Default: 1 hour
	RefreshExpiry time.Duration // Default: 7 days
}

// NewManager creates a new token manager.
func NewManager(cfg *Config) *Manager {
	accessExpiry := cfg.AccessExpiry
	if accessExpiry == 0 {
		accessExpiry = time.Hour
	}

	refreshExpiry := cfg.RefreshExpiry
	if refreshExpiry == 0 {
		refreshExpiry = 7 * 24 * time.Hour
	}

	return &Manager{
		secret:        []byte(cfg.Secret),
		issuer:        cfg.Issuer,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// GenerateAccess generates a new access token for the user.
func (m *Manager) GenerateAccess(userID string) (string, error) {
	return m.generate(userID, TypeAccess, m.accessExpiry)
}

// GenerateRefresh generates a new refresh token for the user.
func (m *Manager) GenerateRefresh(userID string) (string, error) {
	return m.generate(userID, TypeRefresh, m.refreshExpiry)
}

func (m *Manager) generate(userID string, tokenType Type, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Parse validates a token string and checks it is of the expected type.
func (m *Manager) Parse(tokenString string, expectedType Type) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.TokenType != expectedType {
		return nil, fmt.Errorf("unexpected token type: %s", claims.TokenType)
	}
	return claims, nil
}

// RefreshExpiry returns the configured refresh token lifetime.
func (m *Manager) RefreshExpiry() time.Duration {
	return m.refreshExpiry
}
