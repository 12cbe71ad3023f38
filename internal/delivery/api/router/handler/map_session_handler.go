package handler

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/session"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/geolocation"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MapSessionHandlerParams holds dependencies for MapSessionHandler, injected by Fx.
type MapSessionHandlerParams struct {
	fx.In

	Factory usecase.MapSessionFactory
	Config  *config.Config
	Logger  *slog.Logger
}

// MapSessionHandler runs one map presenter per websocket connection
type MapSessionHandler struct {
	factory  usecase.MapSessionFactory
	cfg      config.SessionConfig
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewMapSessionHandler is the constructor for MapSessionHandler
func NewMapSessionHandler(params MapSessionHandlerParams) *MapSessionHandler {
	return &MapSessionHandler{
		factory: params.Factory,
		cfg:     *params.Config.Session,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Mobile clients send no Origin; browsers are limited by CORS on the REST routes.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: params.Logger,
	}
}

// Serve upgrades the request and blocks until the session ends
func (h *MapSessionHandler) Serve(c echo.Context) error {
	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the request.
		return nil
	}

	sessionID := uuid.New().String()
	reqCtx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(reqCtx, h.logger).With(slog.String("session_id", sessionID))

	// Keeps the identity and logger of the request, not its cancellation.
	ctx, cancel := context.WithCancel(context.WithoutCancel(reqCtx))
	defer cancel()

	conn := session.NewConn(ws, h.cfg, logger)
	launcher := session.NewLauncher(conn)
	renderer := session.NewRenderer(conn, logger)
	location := geolocation.NewReported()

	mapSession := h.factory.NewSession(ctx, usecase.MapSessionParams{
		SessionID:   sessionID,
		Geolocation: location,
		Launcher:    launcher,
		Renderer:    renderer,
	})

	userID, signedIn := middleware.GetUserID(c)
	logger.Info("Map session started", slog.Bool("signed_in", signedIn), slog.String("user_id", userID))

	dispatcher := &session.Dispatcher{Session: mapSession, Location: location, Launcher: launcher}
	readErr := conn.ReadLoop(
		func(msg session.ClientMessage) {
			if err := dispatcher.Dispatch(msg); err != nil {
				logger.Debug("Rejected client message", slog.String("type", msg.Type), slog.Any("error", err))
				mapSession.Notify(usecase.Alert{Title: "Invalid message", Message: alertMessage(err)})
			}
		},
		func(err error) {
			logger.Debug("Undecodable client message", slog.Any("error", err))
			mapSession.Notify(usecase.Alert{Title: "Invalid message", Message: "Messages must be JSON objects"})
		},
	)

	conn.Close()
	mapSession.Close()
	conn.Wait()

	if readErr != nil {
		logger.Debug("Map session read ended", slog.Any("error", readErr))
	}
	logger.Info("Map session ended")

	return nil
}

func alertMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Details() != "" {
		return appErr.Details()
	}

	return err.Error()
}
