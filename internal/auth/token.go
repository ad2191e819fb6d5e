// Package auth реализует выпуск JWT-токенов и хэширование паролей.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/ireporter/internal/models"
)

// TokenType различает access и refresh токены
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrWrongTokenType = errors.New("wrong token type")
)

// Claims - claims токена, Subject содержит username
type Claims struct {
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

// JWTManager выпускает и проверяет HS256 токены
type JWTManager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewJWTManager создает JWTManager
func NewJWTManager(secret, issuer string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssuePair выпускает access и refresh токены для username
func (m *JWTManager) IssuePair(username string) (models.TokenPair, error) {
	access, err := m.issue(username, TokenTypeAccess, m.accessTTL)
	if err != nil {
		return models.TokenPair{}, err
	}
	refresh, err := m.issue(username, TokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return models.TokenPair{}, err
	}
	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueAccess выпускает только access токен
func (m *JWTManager) IssueAccess(username string) (string, error) {
	return m.issue(username, TokenTypeAccess, m.accessTTL)
}

// ParseAccess проверяет access токен и возвращает username
func (m *JWTManager) ParseAccess(token string) (string, error) {
	return m.parse(token, TokenTypeAccess)
}

// ParseRefresh проверяет refresh токен и возвращает username
func (m *JWTManager) ParseRefresh(token string) (string, error) {
	return m.parse(token, TokenTypeRefresh)
}

func (m *JWTManager) issue(username string, typ TokenType, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    m.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", typ, err)
	}
	return signed, nil
}

func (m *JWTManager) parse(tokenString string, expected TokenType) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: token has expired", ErrInvalidToken)
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	if claims.Type != expected {
		return "", fmt.Errorf("%w: expected %s token", ErrWrongTokenType, expected)
	}
	return claims.Subject, nil
}
