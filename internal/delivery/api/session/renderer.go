package session

import (
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/geo"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// Renderer turns presenter output into frames.
type Renderer struct {
	conn   *Conn
	logger *slog.Logger
}

// NewRenderer creates a renderer writing to conn.
func NewRenderer(conn *Conn, logger *slog.Logger) *Renderer {
	return &Renderer{conn: conn, logger: logger}
}

// Render sends the full view state, with the radius overlay as GeoJSON.
func (r *Renderer) Render(state usecase.ViewState) {
	frame := Frame{Type: FrameState, State: &state}
	if state.Radius != nil {
		frame.Radius = geo.RadiusFeature(state.Radius.Center, state.Radius.Meters, state.Radius.Steps)
	}

	r.send(frame)
}

// SetCamera sends a camera move.
func (r *Renderer) SetCamera(cmd entity.CameraCommand) {
	r.send(Frame{
		Type: FrameCamera,
		Camera: &CameraFrame{
			Position:   cmd.Position,
			Animated:   cmd.Animated,
			DurationMS: cmd.Duration.Milliseconds(),
			Reason:     cmd.Reason,
		},
	})
}

// Alert sends a modal message.
func (r *Renderer) Alert(alert usecase.Alert) {
	r.send(Frame{Type: FrameAlert, Alert: &alert})
}

func (r *Renderer) send(frame Frame) {
	if err := r.conn.Send(frame); err != nil && !errors.Is(err, ErrClosed) {
		r.logger.Warn("Failed to send frame", slog.String("type", frame.Type), slog.Any("error", err))
	}
}
