package auth

import (
	"fmt"
	"time"

	"proshop/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "typ" claim. Only access tokens are
// accepted for request authentication.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the JWT claims embedded in every issued token. Requests
// are authenticated from the claims alone, with no session lookup.
type Claims struct {
	UserID    uuid.UUID `json:"uid"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"isAdmin"`
	TokenType string    `json:"typ"`
	jwt.RegisteredClaims
}

// Pair is an access token plus its refresh counterpart.
type Pair struct {
	AccessToken  string
	RefreshToken string
}

// TokenManager issues and verifies signed bearer tokens.
type TokenManager interface {
	// Issue creates an access/refresh token pair for the user.
	Issue(user *model.User) (*Pair, error)

	// Verify checks signature, expiry and token type, returning the
	// embedded claims.
	Verify(token string) (*Claims, error)
}

// tokenManager implements TokenManager with HMAC-SHA256 signing.
type tokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a token manager signing with the given secret.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) TokenManager {
	return &tokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Issue creates an access/refresh token pair for the user.
func (m *tokenManager) Issue(user *model.User) (*Pair, error) {
	access, err := m.sign(user, TokenTypeAccess, m.accessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := m.sign(user, TokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (m *tokenManager) sign(user *model.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}

	return signed, nil
}

// Verify checks signature, expiry and token type, returning the
// embedded claims.
func (m *tokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.TokenType != TokenTypeAccess {
		return nil, fmt.Errorf("token is not an access token")
	}

	return claims, nil
}
