package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies the signed bearer credentials that bind a
// request to a username.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a token service signing with HMAC-SHA256. A zero ttl
// issues tokens without an expiry claim.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	jwt.RegisteredClaims
}

// Issue signs a credential with the username as subject.
func (s *TokenService) Issue(username string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  username,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature (and expiry, when present) and returns the
// embedded username. It fails with ErrMissingToken for an empty credential
// and ErrInvalidToken for anything that does not verify.
func (s *TokenService) Verify(raw string) (string, error) {
	if raw == "" {
		return "", ErrMissingToken
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
