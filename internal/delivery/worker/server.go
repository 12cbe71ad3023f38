// Package worker is the Pub/Sub push endpoint that turns store events into notifications.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/middleware"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PushPath is where the push subscription delivers store events.
const PushPath = "/push"

type openWorker struct {
	hostPort string
	logger   *slog.Logger
	echo     *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewEcho builds the worker routes: a liveness probe and the push endpoint.
func NewEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "role": "openworker"})
	})
	e.POST(PushPath, push.HandlePush)

	return e
}

// NewServer wires the worker echo instance into the fx lifecycle
func NewServer(params ServerParams) (delivery.Delivery, error) {
	w := &openWorker{
		hostPort: net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		logger:   params.Logger.With(slog.String("component", "openworker")),
		echo:     NewEcho(params.Cfg, params.Logger, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{OnStop: w.shutdown})

	return w, nil
}

// Serve blocks until the listener fails or shutdown closes it
func (w *openWorker) Serve(ctx context.Context) error {
	w.logger.Info("[Worker] Listening for store event pushes",
		slog.String("host_port", w.hostPort),
		slog.String("path", PushPath),
	)

	err := w.echo.Start(w.hostPort)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (w *openWorker) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	w.logger.Info("[Worker] Draining push requests")

	return errors.WithStack(w.echo.Shutdown(ctx))
}
