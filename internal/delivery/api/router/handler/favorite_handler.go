package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	StoreUC    usecase.StoreUsecase
}

// FavoriteHandler exposes the signed-in buyer's favorites
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	storeUC    usecase.StoreUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		storeUC:    params.StoreUC,
	}
}

// ListFavorites returns every favorite of the user
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites)
}

// CountFavorites returns how many stores the user favorited
func (h *FavoriteHandler) CountFavorites(c echo.Context) error {
	count, err := h.favoriteUC.CountFavorites(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"count": count})
}

// CheckFavorite reports whether the user favorited the store
func (h *FavoriteHandler) CheckFavorite(c echo.Context) error {
	storeID := c.Param("storeId")

	favorited, err := h.favoriteUC.CheckFavorite(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"store_id":  storeID,
		"favorited": favorited,
	})
}

// ToggleFavorite flips the favorite and returns the new value. A favorite of a
// deleted store can still be toggled off.
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	ctx := c.Request().Context()
	storeID := c.Param("storeId")

	store, err := h.storeUC.GetStore(ctx, storeID)
	if errors.Is(err, domainerrors.ErrStoreNotFound) {
		removed, removeErr := h.favoriteUC.RemoveFavorite(ctx, storeID)
		if removeErr != nil {
			return response.HandleAppError(c, removeErr)
		}
		if !removed {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, map[string]any{
			"store_id":  storeID,
			"favorited": false,
		})
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favorited, err := h.favoriteUC.ToggleFavorite(ctx, store)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"store_id":  storeID,
		"favorited": favorited,
	})
}
