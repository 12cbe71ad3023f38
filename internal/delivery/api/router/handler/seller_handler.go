package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SellerHandlerParams holds dependencies for SellerHandler, injected by Fx.
type SellerHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
}

// SellerHandler holds the owner-only store management endpoints
type SellerHandler struct {
	storeUC usecase.StoreUsecase
}

// NewSellerHandler is the constructor for SellerHandler
func NewSellerHandler(params SellerHandlerParams) *SellerHandler {
	return &SellerHandler{storeUC: params.StoreUC}
}

// bindValid binds the body into req and runs its validate tags.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}

	return c.Validate(req)
}

// ownerID is set by the Authenticate middleware on every seller route.
func ownerID(c echo.Context) string {
	userID, _ := middleware.GetUserID(c)

	return userID
}

// RegisterStore creates a closed store owned by the caller
func (h *SellerHandler) RegisterStore(c echo.Context) error {
	var req usecase.RegisterStoreInput
	if err := bindValid(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	store, err := h.storeUC.RegisterStore(c.Request().Context(), ownerID(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, store)
}

// GetOwnerStores lists the caller's stores
func (h *SellerHandler) GetOwnerStores(c echo.Context) error {
	stores, err := h.storeUC.GetOwnerStores(c.Request().Context(), ownerID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stores)
}

// EditStore applies a partial update of the store details
func (h *SellerHandler) EditStore(c echo.Context) error {
	var req usecase.EditStoreInput
	if err := bindValid(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	store, err := h.storeUC.EditStore(c.Request().Context(), ownerID(c), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

// SetShopOpen opens or closes the shop
func (h *SellerHandler) SetShopOpen(c echo.Context) error {
	var req usecase.SetShopOpenInput
	if err := bindValid(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	store, err := h.storeUC.SetShopOpen(c.Request().Context(), ownerID(c), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

// RelocateStore moves the shop
func (h *SellerHandler) RelocateStore(c echo.Context) error {
	var req usecase.RelocateStoreInput
	if err := bindValid(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	store, err := h.storeUC.RelocateStore(c.Request().Context(), ownerID(c), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

// AddProduct appends a catalogue entry
func (h *SellerHandler) AddProduct(c echo.Context) error {
	var req usecase.AddProductInput
	if err := bindValid(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.storeUC.AddProduct(c.Request().Context(), ownerID(c), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// RemoveProduct deletes a catalogue entry
func (h *SellerHandler) RemoveProduct(c echo.Context) error {
	if err := h.storeUC.RemoveProduct(c.Request().Context(), ownerID(c), c.Param("id"), c.Param("productId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteStore removes the store
func (h *SellerHandler) DeleteStore(c echo.Context) error {
	if err := h.storeUC.DeleteStore(c.Request().Context(), ownerID(c), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
