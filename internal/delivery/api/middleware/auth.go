// Package middleware holds the API-only echo middleware.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"

	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix = "Bearer "

	// tokenQueryParam carries the token for clients that cannot set headers on
	// a websocket upgrade.
	tokenQueryParam = "token"
)

// AuthMiddleware verifies bearer tokens and attaches the identity to the request.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate rejects requests without a valid token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, present, malformed := bearerToken(c)
		if malformed {
			return domainerrors.ErrInvalidToken.WithDetails("must be Bearer token")
		}
		if !present {
			return domainerrors.ErrSignInRequired
		}

		if err := m.attach(c, token); err != nil {
			return err
		}

		return next(c)
	}
}

// Optional attaches the identity when a valid token is present and lets
// anonymous requests through. A present but invalid token is still rejected.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, present, malformed := bearerToken(c)
		if malformed {
			return domainerrors.ErrInvalidToken.WithDetails("must be Bearer token")
		}
		if present {
			if err := m.attach(c, token); err != nil {
				return err
			}
		}

		return next(c)
	}
}

func (m *AuthMiddleware) attach(c echo.Context, token string) error {
	ctx := c.Request().Context()

	identity, err := m.verifier.VerifyToken(ctx, token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Token rejected", slog.Any("error", err))

		return domainerrors.ErrInvalidToken
	}

	deliverycontext.SetUserID(c, identity.UserID)
	c.SetRequest(c.Request().WithContext(auth.WithIdentity(ctx, identity)))

	return nil
}

// bearerToken reads the Authorization header, then the token query parameter.
func bearerToken(c echo.Context) (token string, present, malformed bool) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if !strings.HasPrefix(header, bearerPrefix) {
			return "", true, true
		}

		token = strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

		return token, token != "", token == ""
	}

	if token = c.QueryParam(tokenQueryParam); token != "" {
		return token, true, false
	}

	return "", false, false
}

// GetUserID returns the user id set by Authenticate or Optional.
func GetUserID(c echo.Context) (string, bool) {
	return deliverycontext.GetUserID(c)
}
