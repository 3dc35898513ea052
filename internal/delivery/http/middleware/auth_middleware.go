package middleware

import (
	"crypto/subtle"
	"strings"

	"ideaforge/config"
	"ideaforge/internal/delivery/http/response"
	"ideaforge/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextUserIDKey is the echo context key the verified caller ID is set under.
const ContextUserIDKey = "userID"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, cfg: cfg}
}

// Authenticate validates the bearer token issued by the external auth
// provider and sets the verified user ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		identity, err := m.verifier.VerifyToken(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextUserIDKey, identity.UserID)

		return next(c)
	}
}

// OptionalAuthenticate resolves the caller's identity when a valid bearer
// token is present, but lets anonymous requests through. Used on reads of
// public resources where the visibility gate differentiates owners.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return next(c)
		}

		// An unverifiable token degrades to an anonymous request rather
		// than failing the read.
		identity, err := m.verifier.VerifyToken(c.Request().Context(), tokenString)
		if err == nil {
			c.Set(ContextUserIDKey, identity.UserID)
		}

		return next(c)
	}
}

// VerifyWebhookSecret guards auth-provider webhook deliveries with a shared
// secret compared in constant time.
func (m *AuthMiddleware) VerifyWebhookSecret(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secret := c.Request().Header.Get("x-webhook-secret")
		expected := ""
		if m.cfg.Webhook != nil {
			expected = m.cfg.Webhook.Secret
		}

		if expected == "" ||
			subtle.ConstantTimeCompare([]byte(secret), []byte(expected)) != 1 {
			return response.Unauthorized(c, "WEBHOOK_SECRET_INVALID", "Invalid webhook secret")
		}

		return next(c)
	}
}
