package middleware

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Business codes for failures raised by echo itself.
var transportErrorCodes = map[int]string{
	http.StatusNotFound:              "ROUTE_NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
}

type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is the echo.HTTPErrorHandler of the API. Domain errors keep
// their mapping, echo errors get a transport code, and anything else becomes a
// logged 500 without details.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		_ = response.HandleAppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code, ok := transportErrorCodes[httpErr.Code]
		if !ok {
			code = "HTTP_ERROR"
		}
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
	)
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
