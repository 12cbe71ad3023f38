package handler

import (
	"net/http"
	"time"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	// Issuer is nil unless identity.provider is local.
	Issuer service.TokenIssuer `optional:"true"`
}

// TestHandler handles development sign-in and middleware checks
type TestHandler struct {
	issuer service.TokenIssuer
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{issuer: params.Issuer}
}

// IssueTokenRequest is the body of POST /test/token
type IssueTokenRequest struct {
	UserID string `json:"user_id" validate:"required,max=128"`
	Email  string `json:"email" validate:"omitempty,email"`
}

// IssueToken signs in as any user with the local identity provider
func (h *TestHandler) IssueToken(c echo.Context) error {
	if h.issuer == nil {
		return response.NotFound(c, "LOCAL_IDENTITY_DISABLED", "Token issuance requires the local identity provider")
	}

	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token request")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	token, expiresAt, err := h.issuer.IssueToken(req.UserID, req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_at":   expiresAt.UTC().Format(time.RFC3339),
	})
}

// TestAuthMiddleware echoes the identity resolved by the auth middleware
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"userID":  userID,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// HealthCheck answers liveness probes
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
