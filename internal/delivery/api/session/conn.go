package session

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"storefront/config"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

var (
	// ErrClosed is returned when sending on a closed connection.
	ErrClosed = errors.New("session connection closed")

	// ErrSlowClient is returned when the send buffer is full. The connection is closed.
	ErrSlowClient = errors.New("session client too slow")
)

// Conn owns one websocket. Frames are queued by Send and written by a single
// writer goroutine that also keeps the connection alive with pings.
type Conn struct {
	ws     *websocket.Conn
	cfg    config.SessionConfig
	logger *slog.Logger

	send       chan []byte
	closed     chan struct{}
	closeOnce  sync.Once
	writerDone chan struct{}
}

// NewConn wraps ws and starts its writer.
func NewConn(ws *websocket.Conn, cfg config.SessionConfig, logger *slog.Logger) *Conn {
	c := &Conn{
		ws:         ws,
		cfg:        cfg,
		logger:     logger,
		send:       make(chan []byte, cfg.SendBuffer),
		closed:     make(chan struct{}),
		writerDone: make(chan struct{}),
	}
	go c.writePump()

	return c
}

// Send queues a frame without blocking.
func (c *Conn) Send(frame Frame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return errors.Wrapf(err, "marshal %s frame", frame.Type)
	}

	select {
	case <-c.closed:
		return ErrClosed
	default:
	}

	select {
	case c.send <- payload:
		return nil
	case <-c.closed:
		return ErrClosed
	default:
		c.logger.Warn("Send buffer full, closing session", slog.Int("buffer", cap(c.send)))
		c.Close()

		return ErrSlowClient
	}
}

// Close stops the writer, which sends a close frame and closes the socket.
// The reader then fails and ReadLoop returns. Safe to call more than once.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}

// Wait blocks until the writer has exited and the socket is closed.
func (c *Conn) Wait() {
	<-c.writerDone
}

// ReadLoop decodes client messages and hands them to handle until the peer
// goes away or the connection is closed. A clean close returns nil.
// Messages that are not valid JSON are reported to onInvalid and skipped.
func (c *Conn) ReadLoop(handle func(ClientMessage), onInvalid func(error)) error {
	c.ws.SetReadLimit(c.cfg.ReadLimit)
	if err := c.ws.SetReadDeadline(time.Now().Add(c.cfg.PongTimeout)); err != nil {
		return errors.WithStack(err)
	}
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.cfg.PongTimeout))
	})

	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			if c.isClosed() || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return errors.WithStack(err)
		}

		var msg ClientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			onInvalid(errors.Wrap(err, "decode client message"))

			continue
		}

		handle(msg)
	}
}

func (c *Conn) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

func (c *Conn) writePump() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
		close(c.writerDone)
	}()

	for {
		select {
		case payload := <-c.send:
			if err := c.write(websocket.TextMessage, payload); err != nil {
				c.logger.Debug("Write failed", slog.Any("error", err))
				c.Close()

				return
			}

		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.logger.Debug("Ping failed", slog.Any("error", err))
				c.Close()

				return
			}

		case <-c.closed:
			closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = c.ws.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(c.cfg.WriteTimeout))

			return
		}
	}
}

func (c *Conn) write(messageType int, payload []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout)); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.ws.WriteMessage(messageType, payload))
}
