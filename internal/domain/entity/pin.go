package entity

// DefaultPinTitle is shown for shops that have no name.
const DefaultPinTitle = "Unnamed Shop"

// Pin is the map projection of an open store with a position. Pins are derived
// from the store feed and never persisted.
type Pin struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Store     *Store  `json:"store"`
}

// NewPin projects a store onto the map. It returns false when the store
// cannot be shown: it is closed or has no position.
func NewPin(s *Store) (Pin, bool) {
	if s == nil || !s.ShopOpen || s.Position == nil {
		return Pin{}, false
	}

	title := s.ShopName
	if title == "" {
		title = DefaultPinTitle
	}

	return Pin{
		ID:        s.ID,
		Title:     title,
		Latitude:  s.Position.Latitude,
		Longitude: s.Position.Longitude,
		Store:     s,
	}, true
}

// Coordinate returns the pin location.
func (p Pin) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}
