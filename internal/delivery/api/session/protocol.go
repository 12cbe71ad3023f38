// Package session carries map sessions over websocket connections.
//
// Every frame is a JSON text message with a "type" field. The client reports
// its location platform (permission, positions, errors) and the map gestures;
// the server answers with view states, camera moves, alerts, and intents the
// client must open.
package session

import (
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/paulmach/orb/geojson"
)

// Client message types
const (
	MsgHello            = "hello"
	MsgPermission       = "permission"
	MsgPosition         = "position"
	MsgPositionError    = "position_error"
	MsgSelectPin        = "select_pin"
	MsgCloseSheet       = "close_sheet"
	MsgOpenFab          = "open_fab"
	MsgCloseFab         = "close_fab"
	MsgRecenter         = "recenter"
	MsgQuery            = "query"
	MsgSelectSuggestion = "select_suggestion"
	MsgClearSearch      = "clear_search"
	MsgToggleFavorite   = "toggle_favorite"
	MsgDirections       = "directions"
	MsgDial             = "dial"
)

// Server frame types
const (
	FrameState  = "state"
	FrameCamera = "camera"
	FrameAlert  = "alert"
	FrameIntent = "intent"
)

// ClientMessage is one client to server frame. Only the fields of its type are set.
type ClientMessage struct {
	Type string `json:"type"`

	// hello: URL schemes the device can open, e.g. ["comgooglemaps", "tel"]
	Schemes []string `json:"schemes,omitempty"`

	// permission
	Granted bool   `json:"granted,omitempty"`
	Reason  string `json:"reason,omitempty"`

	// position
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// position_error
	Message string `json:"message,omitempty"`

	// select_pin, select_suggestion
	StoreID string `json:"store_id,omitempty"`

	// query
	Query string `json:"query,omitempty"`
}

// CameraFrame is a camera command with the duration in milliseconds.
type CameraFrame struct {
	Position   entity.CameraPosition `json:"position"`
	Animated   bool                  `json:"animated"`
	DurationMS int64                 `json:"duration_ms"`
	Reason     entity.CameraReason   `json:"reason"`
}

// Frame is one server to client frame.
type Frame struct {
	Type string `json:"type"`

	State *usecase.ViewState `json:"state,omitempty"`

	// Radius is the overlay of State.Radius as a GeoJSON polygon.
	Radius *geojson.Feature `json:"radius_geojson,omitempty"`

	Camera *CameraFrame   `json:"camera,omitempty"`
	Alert  *usecase.Alert `json:"alert,omitempty"`
	URL    string         `json:"url,omitempty"`
}
