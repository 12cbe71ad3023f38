package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/session"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mapSessionFixtures struct {
	factory    *mockUC.MockMapSessionFactory
	mapSession *mockUC.MockMapSession
	verifier   *mockSvc.MockTokenVerifier
	url        string
}

func createTestMapSessionServer(t *testing.T) mapSessionFixtures {
	factory := mockUC.NewMockMapSessionFactory(t)
	mapSession := mockUC.NewMockMapSession(t)
	verifier := mockSvc.NewMockTokenVerifier(t)

	h := NewMapSessionHandler(MapSessionHandlerParams{
		Factory: factory,
		Config: &config.Config{Session: &config.SessionConfig{
			WriteTimeout: time.Second,
			PongTimeout:  5 * time.Second,
			PingInterval: time.Hour,
			ReadLimit:    4096,
			SendBuffer:   16,
		}},
		Logger: newDiscardLogger(),
	})
	authMiddleware := apimiddleware.NewAuthMiddleware(verifier, newDiscardLogger())

	e := newTestEcho()
	e.GET("/ws/map", h.Serve, authMiddleware.Optional)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return mapSessionFixtures{
		factory:    factory,
		mapSession: mapSession,
		verifier:   verifier,
		url:        "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/map",
	}
}

func dialMapSession(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	client, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	return client
}

func readSessionFrame(t *testing.T, client *websocket.Conn) session.Frame {
	t.Helper()

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))

	var frame session.Frame
	require.NoError(t, client.ReadJSON(&frame))

	return frame
}

func TestMapSessionHandler_Serve(t *testing.T) {
	fx := createTestMapSessionServer(t)

	closed := make(chan struct{})
	recentered := make(chan struct{})
	sessionCtx := make(chan context.Context, 1)

	fx.verifier.EXPECT().VerifyToken(mock.Anything, "buyer-token").
		Return(&service.Identity{UserID: "buyer-1"}, nil).Once()
	fx.factory.EXPECT().NewSession(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, params usecase.MapSessionParams) usecase.MapSession {
			sessionCtx <- ctx
			assert.NotEmpty(t, params.SessionID)
			params.Renderer.Render(usecase.ViewState{FeedLoading: true})

			return fx.mapSession
		}).Once()
	fx.mapSession.EXPECT().Recenter().Run(func() { close(recentered) }).Once()
	fx.mapSession.EXPECT().Close().Run(func() { close(closed) }).Once()

	client := dialMapSession(t, fx.url+"?token=buyer-token")
	defer client.Close()

	first := readSessionFrame(t, client)
	assert.Equal(t, session.FrameState, first.Type)
	require.NotNil(t, first.State)
	assert.True(t, first.State.FeedLoading)

	identity, ok := auth.IdentityFrom(<-sessionCtx)
	require.True(t, ok)
	assert.Equal(t, "buyer-1", identity.UserID)

	require.NoError(t, client.WriteJSON(session.ClientMessage{Type: session.MsgHello, Schemes: []string{"tel"}}))
	require.NoError(t, client.WriteJSON(session.ClientMessage{Type: session.MsgRecenter}))

	select {
	case <-recentered:
	case <-time.After(2 * time.Second):
		t.Fatal("recenter was not dispatched")
	}

	require.NoError(t, client.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("session was not closed after the client left")
	}
}

func TestMapSessionHandler_InvalidMessagesRaiseAlerts(t *testing.T) {
	fx := createTestMapSessionServer(t)

	closed := make(chan struct{})
	alerts := make(chan usecase.Alert, 2)
	fx.factory.EXPECT().NewSession(mock.Anything, mock.Anything).Return(fx.mapSession).Once()
	fx.mapSession.EXPECT().Notify(mock.Anything).Run(func(alert usecase.Alert) { alerts <- alert }).Twice()
	fx.mapSession.EXPECT().Close().Run(func() { close(closed) }).Once()

	client := dialMapSession(t, fx.url)
	defer client.Close()

	// Alerts go through the session so that only its goroutine renders.
	require.NoError(t, client.WriteMessage(websocket.TextMessage, []byte("hello?")))
	alert := receiveAlert(t, alerts)
	assert.Equal(t, "Invalid message", alert.Title)
	assert.Equal(t, "Messages must be JSON objects", alert.Message)

	require.NoError(t, client.WriteJSON(session.ClientMessage{Type: "teleport"}))
	assert.Equal(t, "unknown message type: teleport", receiveAlert(t, alerts).Message)

	require.NoError(t, client.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("session was not closed after the client left")
	}
}

func receiveAlert(t *testing.T, alerts <-chan usecase.Alert) usecase.Alert {
	t.Helper()

	select {
	case alert := <-alerts:
		return alert
	case <-time.After(2 * time.Second):
		t.Fatal("no alert raised")

		return usecase.Alert{}
	}
}
