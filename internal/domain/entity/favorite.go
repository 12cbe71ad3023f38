package entity

import (
	"fmt"
	"time"
)

// Favorite is a buyer's bookmark of a store. The store fields are a snapshot
// taken when the favorite was created and are never refreshed.
type Favorite struct {
	ID          string     `json:"id"` // Always FavoriteKey(UserID, StoreID).
	UserID      string     `json:"user_id"`
	StoreID     string     `json:"store_id"`
	StoreName   string     `json:"store_name"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	OwnerNumber string     `json:"owner_number"`
	CreatedAt   *time.Time `json:"created_at,omitempty"` // Assigned by the store on creation.
}

// FavoriteKey is the document identity of the favorite linking a user to a store.
func FavoriteKey(userID, storeID string) string {
	return fmt.Sprintf("%s_%s", userID, storeID)
}

// NewFavorite snapshots the store into a favorite owned by userID.
func NewFavorite(userID string, s *Store) *Favorite {
	fav := &Favorite{
		ID:          FavoriteKey(userID, s.ID),
		UserID:      userID,
		StoreID:     s.ID,
		StoreName:   s.ShopName,
		OwnerNumber: s.OwnerPhone,
	}
	if s.Position != nil {
		lat, lon := s.Position.Latitude, s.Position.Longitude
		fav.Latitude = &lat
		fav.Longitude = &lon
	}

	return fav
}
