package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxCallerRequestIDLength = 128

type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process tags the request with the caller's X-Request-Id, or a fresh uuid when
// the header is absent or unfit for logs. Both the echo.Context and the request
// context carry the id; the latter also carries a logger bound to it.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !usableRequestID(id) {
			id = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, id)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)

		req := c.Request()
		ctx := deliverycontext.WithLogger(
			deliverycontext.WithRequestID(req.Context(), id),
			m.logger.With(slog.String("request_id", id)),
		)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// usableRequestID accepts short printable ASCII ids.
func usableRequestID(id string) bool {
	if id == "" || len(id) > maxCallerRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
