package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/navigation"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	QRCode  service.QRCodeService
	Logger  *slog.Logger
}

// StoreHandler serves the buyer-facing store sheet: details, directions and share code
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	qrCode  service.QRCodeService
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		qrCode:  params.QRCode,
		logger:  params.Logger,
	}
}

// DirectionsResponse holds the deep links of a store
type DirectionsResponse struct {
	navigation.Directions
	DialURL string `json:"dial_url,omitempty"`
}

// GetStore returns one store
func (h *StoreHandler) GetStore(c echo.Context) error {
	store, err := h.storeUC.GetStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

// GetDirections returns the native maps link, the web fallback and the dial link
func (h *StoreHandler) GetDirections(c echo.Context) error {
	links, phone, err := h.directions(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := DirectionsResponse{Directions: links}
	if phone != "" {
		resp.DialURL = navigation.DialURL(phone)
	}

	return response.Success(c, http.StatusOK, resp)
}

// GetShareQR returns a PNG QR code of the store's web map link
func (h *StoreHandler) GetShareQR(c echo.Context) error {
	links, _, err := h.directions(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCode.GenerateStoreShareQR(links.WebURL)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Failed to generate share QR",
			slog.String("store_id", c.Param("id")),
			slog.Any("error", err),
		)

		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *StoreHandler) directions(c echo.Context) (navigation.Directions, string, error) {
	store, err := h.storeUC.GetStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return navigation.Directions{}, "", err
	}
	if !store.HasPosition() {
		return navigation.Directions{}, "", domainerrors.ErrValidationFailed.WithDetails("store has no location")
	}

	return navigation.DirectionsFor(*store.Position, store.ShopName), store.OwnerPhone, nil
}
