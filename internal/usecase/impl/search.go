package impl

import (
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// SearchPins returns the pins whose shop or owner name contains the query,
// ignoring case. Feed order is preserved. A blank query matches nothing.
func SearchPins(query string, pins []entity.Pin) []entity.Pin {
	needle := strings.ToLower(strings.TrimSpace(query))
	matches := []entity.Pin{}
	if needle == "" {
		return matches
	}

	for _, pin := range pins {
		shopName, ownerName := pin.Title, ""
		if pin.Store != nil {
			shopName, ownerName = pin.Store.ShopName, pin.Store.OwnerName
		}
		if strings.Contains(strings.ToLower(shopName), needle) ||
			strings.Contains(strings.ToLower(ownerName), needle) {
			matches = append(matches, pin)
		}
	}

	return matches
}

// SearchBox holds the query, the suggestions it produced and the selected result.
type SearchBox struct {
	query       string
	suggestions []entity.Pin
	focus       *entity.Coordinate
}

// Type replaces the query and recomputes suggestions.
func (b *SearchBox) Type(query string, pins []entity.Pin) {
	b.query = query
	b.suggestions = SearchPins(query, pins)
}

// Refresh recomputes suggestions for the current query against new pins.
func (b *SearchBox) Refresh(pins []entity.Pin) {
	if b.query == "" {
		return
	}
	b.suggestions = SearchPins(b.query, pins)
}

// Select focuses a result, echoes its name into the query and drops the suggestions.
func (b *SearchBox) Select(pin entity.Pin) {
	coord := pin.Coordinate()
	b.focus = &coord
	b.query = pin.Title
	b.suggestions = []entity.Pin{}
}

// Clear resets the box.
func (b *SearchBox) Clear() {
	b.query = ""
	b.suggestions = []entity.Pin{}
	b.focus = nil
}

// Suggestion finds a pin among the current suggestions.
func (b *SearchBox) Suggestion(id string) (entity.Pin, bool) {
	for _, pin := range b.suggestions {
		if pin.ID == id {
			return pin, true
		}
	}

	return entity.Pin{}, false
}

// State returns a copy of the box content.
func (b *SearchBox) State() usecase.SearchState {
	suggestions := b.suggestions
	if suggestions == nil {
		suggestions = []entity.Pin{}
	}

	return usecase.SearchState{
		Query:       b.query,
		Suggestions: suggestions,
		Focus:       b.focus,
	}
}
