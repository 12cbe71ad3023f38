package session

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		WriteTimeout: time.Second,
		PongTimeout:  5 * time.Second,
		PingInterval: time.Hour,
		ReadLimit:    4096,
		SendBuffer:   8,
	}
}

// newConnPair returns the server side Conn and the client socket of one connection.
func newConnPair(t *testing.T, cfg config.SessionConfig) (*Conn, *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	conns := make(chan *Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conns <- NewConn(ws, cfg, newDiscardLogger())
	}))
	t.Cleanup(srv.Close)

	client, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	conn := <-conns
	t.Cleanup(func() {
		conn.Close()
		conn.Wait()
		_ = client.Close()
	})

	return conn, client
}

func readFrame(t *testing.T, client *websocket.Conn) Frame {
	t.Helper()

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))

	var frame Frame
	require.NoError(t, client.ReadJSON(&frame))

	return frame
}
