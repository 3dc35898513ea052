// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ideaforge/config"
	"ideaforge/internal/domain/service"
)

// jwtVerifier is a concrete implementation of the TokenVerifier interface.
// It validates HS256 tokens minted by the external auth provider with the
// shared signing secret; the backend never issues tokens itself.
type jwtVerifier struct {
	secret string
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtVerifier{
		secret: cfg.Auth.JWTSecret,
	}, nil
}

// VerifyToken validates the token signature and expiry and extracts the
// caller's identity from the standard claims.
func (v *jwtVerifier) VerifyToken(_ context.Context, tokenString string) (*service.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(v.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, service.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, service.ErrInvalidToken
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, service.ErrInvalidToken
	}

	identity := &service.Identity{UserID: userID}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}
