package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Started at init by the opencensus instrumentation of the Firebase clients.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Identity: &config.IdentityConfig{Provider: "local", LocalSecret: "test-secret", LocalTokenTTL: time.Hour},
		Map: &config.MapConfig{
			FallbackLatitude:  config.DefaultFallbackLatitude,
			FallbackLongitude: config.DefaultFallbackLongitude,
			DefaultZoom:       13,
			SearchZoom:        16,
			Pitch:             30,
			AnimationDuration: 800 * time.Millisecond,
			RadiusMeters:      3000,
			RadiusSteps:       32,
		},
		Location:   &config.LocationConfig{FirstFixTimeout: time.Second, HighAccuracy: true},
		Session:    &config.SessionConfig{WriteTimeout: time.Second, PongTimeout: time.Minute, PingInterval: time.Minute, ReadLimit: 4096, SendBuffer: 16},
		TestRoutes: &config.TestRoutesConfig{Enabled: true},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return cfg
}

// newTestServer wires the API on the in-memory store and local identity.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := newTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db := memory.NewDB()
	storeRepo := memory.NewStoreRepository(db, "store")
	favoriteRepo := memory.NewFavoriteRepository(db, "fav")

	tokens, err := auth.NewLocalTokens(cfg)
	require.NoError(t, err)

	feed := impl.NewStoreFeed(storeRepo, logger)
	require.NoError(t, feed.Start(context.Background()))
	t.Cleanup(feed.Close)

	storeUC := impl.NewStoreService(storeRepo, pubsub.NewNoopPublisher(logger), logger)
	favoriteUC := impl.NewFavoriteService(favoriteRepo, auth.NewIdentityProvider(), logger)
	factory := impl.NewMapSessionFactory(feed, favoriteUC, cfg, logger)

	return NewEcho(cfg, logger, router.RouterParams{
		FeedHandler: handler.NewFeedHandler(handler.FeedHandlerParams{Feed: feed, Config: cfg}),
		StoreHandler: handler.NewStoreHandler(handler.StoreHandlerParams{
			StoreUC: storeUC, QRCode: qrcode.NewQRCodeService(128, "M"), Logger: logger,
		}),
		FavoriteHandler:   handler.NewFavoriteHandler(handler.FavoriteHandlerParams{FavoriteUC: favoriteUC, StoreUC: storeUC}),
		SellerHandler:     handler.NewSellerHandler(handler.SellerHandlerParams{StoreUC: storeUC}),
		MapSessionHandler: handler.NewMapSessionHandler(handler.MapSessionHandlerParams{Factory: factory, Config: cfg, Logger: logger}),
		TestHandler:       handler.NewTestHandler(handler.TestHandlerParams{Issuer: tokens}),
		AuthMiddleware:    middleware.NewAuthMiddleware(tokens, logger),
		Config:            cfg,
	})
}

func call(t *testing.T, e *echo.Echo, method, path, token, body string, out any) int {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if out != nil && rec.Code < http.StatusBadRequest {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
		require.NoError(t, json.Unmarshal(env.Data, out))
	}

	return rec.Code
}

func signIn(t *testing.T, e *echo.Echo, userID string) string {
	t.Helper()

	var token struct {
		AccessToken string `json:"access_token"`
	}
	require.Equal(t, http.StatusCreated, call(t, e, http.MethodPost, "/test/token", "", `{"user_id":"`+userID+`"}`, &token))
	require.NotEmpty(t, token.AccessToken)

	return token.AccessToken
}

func TestServer_SellerOpensShopAndBuyerFavoritesIt(t *testing.T) {
	e := newTestServer(t)

	seller := signIn(t, e, "seller-1")
	buyer := signIn(t, e, "buyer-1")

	var store struct {
		ID       string `json:"id"`
		ShopOpen bool   `json:"shop_open"`
	}
	require.Equal(t, http.StatusCreated, call(t, e, http.MethodPost, "/api/v1/seller/stores", seller,
		`{"shop_name":"Apple Vandi","owner_name":"Meena","owner_phone":"98400 12345","latitude":10.8,"longitude":78.69}`, &store))
	assert.False(t, store.ShopOpen)

	require.Equal(t, http.StatusOK, call(t, e, http.MethodPut, "/api/v1/seller/stores/"+store.ID+"/open", seller, `{"open":true}`, &store))
	assert.True(t, store.ShopOpen)

	require.Eventually(t, func() bool {
		var state usecase.FeedState
		call(t, e, http.MethodGet, "/api/v1/feed/pins", "", "", &state)

		return len(state.Pins) == 1 && !state.Loading
	}, 2*time.Second, 10*time.Millisecond)

	var search struct {
		Results []struct {
			ID string `json:"id"`
		} `json:"results"`
	}
	require.Equal(t, http.StatusOK, call(t, e, http.MethodGet, "/api/v1/search?q=VANDI", "", "", &search))
	require.Len(t, search.Results, 1)
	assert.Equal(t, store.ID, search.Results[0].ID)

	var toggled struct {
		Favorited bool `json:"favorited"`
	}
	require.Equal(t, http.StatusOK, call(t, e, http.MethodPost, "/api/v1/favorites/"+store.ID+"/toggle", buyer, "", &toggled))
	assert.True(t, toggled.Favorited)

	var count struct {
		Count int `json:"count"`
	}
	require.Equal(t, http.StatusOK, call(t, e, http.MethodGet, "/api/v1/favorites/count", buyer, "", &count))
	assert.Equal(t, 1, count.Count)

	var directions struct {
		WebURL  string `json:"web_url"`
		DialURL string `json:"dial_url"`
	}
	require.Equal(t, http.StatusOK, call(t, e, http.MethodGet, "/api/v1/stores/"+store.ID+"/directions", "", "", &directions))
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=10.8,78.69", directions.WebURL)
	assert.Equal(t, "tel:9840012345", directions.DialURL)
}

func TestServer_Guards(t *testing.T) {
	e := newTestServer(t)

	assert.Equal(t, http.StatusOK, call(t, e, http.MethodGet, "/health", "", "", nil))
	assert.Equal(t, http.StatusUnauthorized, call(t, e, http.MethodGet, "/api/v1/favorites", "", "", nil))
	assert.Equal(t, http.StatusUnauthorized, call(t, e, http.MethodGet, "/api/v1/seller/stores", "not-a-jwt", "", nil))
	assert.Equal(t, http.StatusNotFound, call(t, e, http.MethodGet, "/api/v1/stores/missing", "", "", nil))
	assert.Equal(t, http.StatusNotFound, call(t, e, http.MethodGet, "/api/v1/nothing-here", "", "", nil))

	other := signIn(t, e, "seller-2")
	owner := signIn(t, e, "seller-1")

	var store struct {
		ID string `json:"id"`
	}
	require.Equal(t, http.StatusCreated, call(t, e, http.MethodPost, "/api/v1/seller/stores", owner,
		`{"shop_name":"Chai Point","owner_name":"Mala"}`, &store))
	assert.Equal(t, http.StatusForbidden, call(t, e, http.MethodDelete, "/api/v1/seller/stores/"+store.ID, other, "", nil))
	assert.Equal(t, http.StatusNoContent, call(t, e, http.MethodDelete, "/api/v1/seller/stores/"+store.ID, owner, "", nil))
}

func TestServer_FavoriteOfDeletedStoreCanBeRemoved(t *testing.T) {
	e := newTestServer(t)

	seller := signIn(t, e, "seller-1")
	buyer := signIn(t, e, "buyer-1")

	var store struct {
		ID string `json:"id"`
	}
	require.Equal(t, http.StatusCreated, call(t, e, http.MethodPost, "/api/v1/seller/stores", seller,
		`{"shop_name":"Tea & Snacks","owner_name":"Ravi"}`, &store))

	var toggled struct {
		Favorited bool `json:"favorited"`
	}
	require.Equal(t, http.StatusOK, call(t, e, http.MethodPost, "/api/v1/favorites/"+store.ID+"/toggle", buyer, "", &toggled))
	require.True(t, toggled.Favorited)

	require.Equal(t, http.StatusNoContent, call(t, e, http.MethodDelete, "/api/v1/seller/stores/"+store.ID, seller, "", nil))

	require.Equal(t, http.StatusOK, call(t, e, http.MethodPost, "/api/v1/favorites/"+store.ID+"/toggle", buyer, "", &toggled))
	assert.False(t, toggled.Favorited)

	var count struct {
		Count int `json:"count"`
	}
	require.Equal(t, http.StatusOK, call(t, e, http.MethodGet, "/api/v1/favorites/count", buyer, "", &count))
	assert.Zero(t, count.Count)

	// Nothing left to remove.
	assert.Equal(t, http.StatusNotFound, call(t, e, http.MethodPost, "/api/v1/favorites/"+store.ID+"/toggle", buyer, "", nil))
}
