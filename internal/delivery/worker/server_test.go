package worker

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T) (*echo.Echo, *mockUC.MockStoreEventUsecase) {
	t.Helper()

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvDevelop
	cfg.HTTP.MaxRequestBodySize = "100KB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eventUC := mockUC.NewMockStoreEventUsecase(t)
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:       cfg,
		Logger:       logger,
		StoreEventUC: eventUC,
	})

	return NewEcho(cfg, logger, push), eventUC
}

func TestWorker_Health(t *testing.T) {
	e, _ := newTestWorker(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","role":"openworker"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestWorker_PushCarriesRequestID(t *testing.T) {
	e, eventUC := newTestWorker(t)

	raw, err := json.Marshal(service.StoreEvent{Type: service.StoreEventOpened, StoreID: "s1", ShopName: "Apple Vandi"})
	require.NoError(t, err)
	body, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(raw),
			"attributes": map[string]string{"request_id": "pub-req-7"},
			"messageId":  "m-9",
		},
	})
	require.NoError(t, err)

	eventUC.EXPECT().HandleStoreEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, event *service.StoreEvent) (string, error) {
			assert.Equal(t, "pub-req-7", deliverycontext.GetRequestIDFromContext(ctx))
			assert.Equal(t, "s1", event.StoreID)

			return "fcm-9", nil
		}).Once()

	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWorker_PushRejectsGet(t *testing.T) {
	e, _ := newTestWorker(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, PushPath, nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
