package auth

import (
	"context"
	"testing"
	"time"

	"ideaforge/config"
	"ideaforge/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_jwt_secret_key_very_long_for_testing"

func newTestVerifier(t *testing.T) service.TokenVerifier {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			JWTSecret: testSecret,
		},
	}

	verifier, err := NewJWTVerifier(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, verifier)

	return verifier
}

func mintToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)

	return signed
}

func TestJWTVerifier_ValidToken(t *testing.T) {
	verifier := newTestVerifier(t)

	userID := uuid.New()
	signed := mintToken(t, testSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "jane@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.VerifyToken(context.Background(), signed)
	assert.NoError(t, err)
	assert.NotNil(t, identity)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "jane@example.com", identity.Email)
}

func TestJWTVerifier_NoEmailClaim(t *testing.T) {
	verifier := newTestVerifier(t)

	userID := uuid.New()
	signed := mintToken(t, testSecret, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.VerifyToken(context.Background(), signed)
	assert.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Empty(t, identity.Email)
}

func TestJWTVerifier_WrongSecret(t *testing.T) {
	verifier := newTestVerifier(t)

	signed := mintToken(t, "some_other_secret_entirely", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.VerifyToken(context.Background(), signed)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Nil(t, identity)
}

func TestJWTVerifier_ExpiredToken(t *testing.T) {
	verifier := newTestVerifier(t)

	signed := mintToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	identity, err := verifier.VerifyToken(context.Background(), signed)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Nil(t, identity)
}

func TestJWTVerifier_MissingSubject(t *testing.T) {
	verifier := newTestVerifier(t)

	signed := mintToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.VerifyToken(context.Background(), signed)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Nil(t, identity)
}

func TestJWTVerifier_NonUUIDSubject(t *testing.T) {
	verifier := newTestVerifier(t)

	signed := mintToken(t, testSecret, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	identity, err := verifier.VerifyToken(context.Background(), signed)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Nil(t, identity)
}

func TestJWTVerifier_GarbageToken(t *testing.T) {
	verifier := newTestVerifier(t)

	identity, err := verifier.VerifyToken(context.Background(), "clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Nil(t, identity)
}

func TestJWTVerifier_EmptySecret(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			JWTSecret: "",
		},
	}

	verifier, err := NewJWTVerifier(cfg)
	assert.Error(t, err)
	assert.Nil(t, verifier)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
