// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FeedHandler       *handler.FeedHandler
	StoreHandler      *handler.StoreHandler
	FavoriteHandler   *handler.FavoriteHandler
	SellerHandler     *handler.SellerHandler
	MapSessionHandler *handler.MapSessionHandler
	TestHandler       *handler.TestHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	feedHandler       *handler.FeedHandler
	storeHandler      *handler.StoreHandler
	favoriteHandler   *handler.FavoriteHandler
	sellerHandler     *handler.SellerHandler
	mapSessionHandler *handler.MapSessionHandler
	testHandler       *handler.TestHandler
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		feedHandler:       params.FeedHandler,
		storeHandler:      params.StoreHandler,
		favoriteHandler:   params.FavoriteHandler,
		sellerHandler:     params.SellerHandler,
		mapSessionHandler: params.MapSessionHandler,
		testHandler:       params.TestHandler,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Map sessions work signed out; favorites then answer "sign in required".
	e.GET("/ws/map", r.mapSessionHandler.Serve, r.authMiddleware.Optional)

	apiV1 := e.Group("/api/v1")

	// Public discovery routes
	apiV1.GET("/feed/pins", r.feedHandler.GetPins)
	apiV1.GET("/feed/pins.geojson", r.feedHandler.GetPinsGeoJSON)
	apiV1.GET("/search", r.feedHandler.Search)
	apiV1.GET("/radius", r.feedHandler.GetRadius)

	storesGroup := apiV1.Group("/stores")
	{
		storesGroup.GET("/:id", r.storeHandler.GetStore)
		storesGroup.GET("/:id/directions", r.storeHandler.GetDirections)
		storesGroup.GET("/:id/qr", r.storeHandler.GetShareQR)
	}

	favoritesGroup := apiV1.Group("/favorites")
	favoritesGroup.Use(r.authMiddleware.Authenticate)
	{
		favoritesGroup.GET("", r.favoriteHandler.ListFavorites)
		favoritesGroup.GET("/count", r.favoriteHandler.CountFavorites)
		favoritesGroup.GET("/:storeId", r.favoriteHandler.CheckFavorite)
		favoritesGroup.POST("/:storeId/toggle", r.favoriteHandler.ToggleFavorite)
	}

	sellerGroup := apiV1.Group("/seller/stores")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	{
		sellerGroup.GET("", r.sellerHandler.GetOwnerStores)
		sellerGroup.POST("", r.sellerHandler.RegisterStore)
		sellerGroup.PATCH("/:id", r.sellerHandler.EditStore)
		sellerGroup.PUT("/:id/open", r.sellerHandler.SetShopOpen)
		sellerGroup.POST("/:id/relocate", r.sellerHandler.RelocateStore)
		sellerGroup.POST("/:id/products", r.sellerHandler.AddProduct)
		sellerGroup.DELETE("/:id/products/:productId", r.sellerHandler.RemoveProduct)
		sellerGroup.DELETE("/:id", r.sellerHandler.DeleteStore)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
	testGroup.POST("/token", r.testHandler.IssueToken)
	testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
}
