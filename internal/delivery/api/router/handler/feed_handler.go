package handler

import (
	"net/http"
	"strconv"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/geo"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const geoJSONContentType = "application/geo+json"

// FeedHandlerParams holds dependencies for FeedHandler, injected by Fx.
type FeedHandlerParams struct {
	fx.In

	Feed   usecase.StoreFeed
	Config *config.Config
}

// FeedHandler serves the open-store feed to clients that poll instead of
// holding a map session.
type FeedHandler struct {
	feed   usecase.StoreFeed
	mapCfg config.MapConfig
}

// NewFeedHandler is the constructor for FeedHandler
func NewFeedHandler(params FeedHandlerParams) *FeedHandler {
	return &FeedHandler{
		feed:   params.Feed,
		mapCfg: *params.Config.Map,
	}
}

// GetPins returns the current pins with the feed loading and error flags
func (h *FeedHandler) GetPins(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.feed.State())
}

// GetPinsGeoJSON returns the current pins as a FeatureCollection
func (h *FeedHandler) GetPinsGeoJSON(c echo.Context) error {
	return writeGeoJSON(c, geo.PinFeatures(h.feed.State().Pins))
}

// Search filters the current pins by shop or owner name
func (h *FeedHandler) Search(c echo.Context) error {
	pins := h.feed.Search(c.QueryParam("q"))

	return response.Success(c, http.StatusOK, map[string]any{
		"query":   c.QueryParam("q"),
		"results": pins,
	})
}

// GetRadius returns the radius overlay around lat/lon as a GeoJSON polygon
func (h *FeedHandler) GetRadius(c echo.Context) error {
	center, err := parseCoordinate(c.QueryParam("lat"), c.QueryParam("lon"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return writeGeoJSON(c, geo.RadiusFeature(center, h.mapCfg.RadiusMeters, h.mapCfg.RadiusSteps))
}

func parseCoordinate(rawLat, rawLon string) (entity.Coordinate, error) {
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(rawLat), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(rawLon), 64)
	if latErr != nil || lonErr != nil {
		return entity.Coordinate{}, domainerrors.ErrValidationFailed.WithDetails("lat and lon must be numbers")
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return entity.Coordinate{}, domainerrors.ErrValidationFailed.WithDetails("lat or lon out of range")
	}

	return entity.Coordinate{Latitude: lat, Longitude: lon}, nil
}

func writeGeoJSON(c echo.Context, v interface{ MarshalJSON() ([]byte, error) }) error {
	body, err := v.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal geojson")
	}

	return c.Blob(http.StatusOK, geoJSONContentType, body)
}
