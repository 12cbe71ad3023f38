package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	mockSvc "storefront/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// identityEcho answers 200 with the user id seen by the handler.
func identityEcho(t *testing.T, guard echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.GET("/me", func(c echo.Context) error {
		userID, _ := GetUserID(c)
		if identity, ok := auth.IdentityFrom(c.Request().Context()); ok {
			assert.Equal(t, userID, identity.UserID)
		}

		return c.String(http.StatusOK, userID)
	}, guard)

	return e
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		query      string
		setup      func(v *mockSvc.MockTokenVerifier)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "bearer header",
			header: "Bearer good",
			setup: func(v *mockSvc.MockTokenVerifier) {
				v.EXPECT().VerifyToken(mock.Anything, "good").Return(&service.Identity{UserID: "buyer-1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "buyer-1",
		},
		{
			name:  "query token",
			query: "?token=good",
			setup: func(v *mockSvc.MockTokenVerifier) {
				v.EXPECT().VerifyToken(mock.Anything, "good").Return(&service.Identity{UserID: "buyer-2"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "buyer-2",
		},
		{
			name:       "no token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "SIGN_IN_REQUIRED",
		},
		{
			name:       "not bearer",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "INVALID_TOKEN",
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(v *mockSvc.MockTokenVerifier) {
				v.EXPECT().VerifyToken(mock.Anything, "expired").Return(nil, domainerrors.ErrInvalidToken).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := mockSvc.NewMockTokenVerifier(t)
			if tt.setup != nil {
				tt.setup(verifier)
			}
			e := identityEcho(t, NewAuthMiddleware(verifier, newDiscardLogger()).Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/me"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthMiddleware_Optional(t *testing.T) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	e := identityEcho(t, NewAuthMiddleware(verifier, newDiscardLogger()).Optional)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	verifier.EXPECT().VerifyToken(mock.Anything, "bad").Return(nil, domainerrors.ErrInvalidToken).Once()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	e := echo.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "app error", err: domainerrors.ErrStoreNotFound, wantStatus: http.StatusNotFound, wantCode: "STORE_NOT_FOUND"},
		{name: "method not allowed", err: echo.ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed, wantCode: "METHOD_NOT_ALLOWED"},
		{name: "body too large", err: echo.ErrStatusRequestEntityTooLarge, wantStatus: http.StatusRequestEntityTooLarge, wantCode: "PAYLOAD_TOO_LARGE"},
		{name: "other echo error", err: echo.NewHTTPError(http.StatusTeapot, "nope"), wantStatus: http.StatusTeapot, wantCode: "HTTP_ERROR"},
		{name: "anything else", err: context.DeadlineExceeded, wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			deliverycontext.SetRequestID(c, "req-1")

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.Contains(t, rec.Body.String(), "req-1")
		})
	}
}
