package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// FavoriteStatus is the lifecycle of the favorite flag shown in the store sheet.
type FavoriteStatus string

const (
	FavoriteUnknown    FavoriteStatus = "unknown"
	FavoritePending    FavoriteStatus = "pending"
	FavoriteConfirmed  FavoriteStatus = "confirmed"
	FavoriteRolledBack FavoriteStatus = "rolled_back"
)

// FavoriteFlag is the favorite state of the selected store.
type FavoriteFlag struct {
	Status FavoriteStatus `json:"status"`
	Value  bool           `json:"value"`
	Err    string         `json:"error,omitempty"`
}

// Sheet is the bottom sheet of the selected store.
type Sheet struct {
	Store    *entity.Store `json:"store"`
	Favorite FavoriteFlag  `json:"favorite"`
}

// SearchState is the search box content.
type SearchState struct {
	Query       string             `json:"query"`
	Suggestions []entity.Pin       `json:"suggestions"`
	Focus       *entity.Coordinate `json:"focus,omitempty"`
}

// RadiusOverlay describes the circle drawn around the device.
type RadiusOverlay struct {
	Center entity.Coordinate `json:"center"`
	Meters float64           `json:"meters"`
	Steps  int               `json:"steps"`
}

// ViewState is everything a map client needs to draw one frame.
type ViewState struct {
	Pins        []entity.Pin `json:"pins"`
	FeedLoading bool         `json:"feed_loading"`
	FeedErr     string       `json:"feed_error,omitempty"`

	Location        *entity.Coordinate `json:"location,omitempty"`
	LocationLoading bool               `json:"location_loading"`
	LocationErr     string             `json:"location_error,omitempty"`
	Radius          *RadiusOverlay     `json:"radius,omitempty"`
	RecenterPending bool               `json:"recenter_pending"`

	Camera entity.CameraPosition `json:"camera"`

	StoreSelected bool   `json:"store_selected"`
	Sheet         *Sheet `json:"sheet,omitempty"`
	FabMenuOpen   bool   `json:"fab_menu_open"`

	Search SearchState `json:"search"`
}

// Alert is a modal message for the user.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Renderer receives the outputs of a map session. Calls come from a single goroutine.
type Renderer interface {
	Render(state ViewState)
	SetCamera(cmd entity.CameraCommand)
	Alert(alert Alert)
}

// MapSession is the map screen presenter for one connected client.
// Actions are queued and processed in arrival order.
type MapSession interface {
	SelectPin(storeID string)
	CloseSheet()
	OpenFabMenu()
	CloseFabMenu()
	Recenter()
	TypeQuery(query string)
	SelectSuggestion(storeID string)
	ClearSearch()
	ToggleFavorite()
	OpenDirections()
	DialOwner()

	// Notify shows an alert raised outside the session, such as a rejected
	// client message. It is rendered from the session goroutine like any other output.
	Notify(alert Alert)

	// State returns the last rendered view state.
	State() ViewState

	// Close stops the session and waits for its goroutines.
	Close()
}

// MapSessionParams are the per-connection collaborators of a map session.
type MapSessionParams struct {
	SessionID   string
	Geolocation service.Geolocation
	Launcher    service.IntentLauncher
	Renderer    Renderer
}

// MapSessionFactory builds map sessions bound to the process-wide feed.
type MapSessionFactory interface {
	// NewSession starts a session. ctx carries the identity used for favorites.
	NewSession(ctx context.Context, params MapSessionParams) MapSession
}
