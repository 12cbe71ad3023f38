// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Coordinate is a WGS84 point.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Store is a seller's shop as persisted in the store collection.
type Store struct {
	ID            string      `json:"id"`             // Opaque document identifier.
	OwnerID       string      `json:"owner_id"`       // Identity of the seller who registered the shop.
	ShopName      string      `json:"shop_name"`      // Display name of the shop.
	OwnerName     string      `json:"owner_name"`     // Display name of the seller.
	OwnerPhone    string      `json:"owner_phone"`    // Phone number used for the call intent.
	ShopAddress   string      `json:"shop_address"`   // Free-form address or relocation note.
	Position      *Coordinate `json:"position"`       // Nil when the record carries no usable coordinates.
	ShopOpen      bool        `json:"shop_open"`      // Whether the shop is currently open for business.
	OwnerPhotoURL string      `json:"owner_photo_url"`
	StorefrontURL string      `json:"storefront_url"`
	Products      []Product   `json:"products"` // Catalogue in document order.
	CreatedAt     *time.Time  `json:"created_at,omitempty"`
	UpdatedAt     *time.Time  `json:"updated_at,omitempty"`
	RelocatedAt   *time.Time  `json:"relocated_at,omitempty"`
}

// Product is a catalogue entry embedded in a store.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Price       float64    `json:"price"`
	Description string     `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// HasPosition reports whether the store can be placed on the map.
func (s *Store) HasPosition() bool {
	return s != nil && s.Position != nil
}

// StorePatch lists the fields of a partial store update. Nil fields are left untouched.
type StorePatch struct {
	ShopName      *string
	OwnerName     *string
	OwnerPhone    *string
	ShopAddress   *string
	OwnerPhotoURL *string
	StorefrontURL *string
	ShopOpen      *bool
	Position      *Coordinate
	UpdatedAt     *time.Time
	RelocatedAt   *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p StorePatch) IsEmpty() bool {
	return p.ShopName == nil && p.OwnerName == nil && p.OwnerPhone == nil &&
		p.ShopAddress == nil && p.OwnerPhotoURL == nil && p.StorefrontURL == nil &&
		p.ShopOpen == nil && p.Position == nil && p.UpdatedAt == nil && p.RelocatedAt == nil
}

// Apply writes the patch onto a copy of the store and returns it.
func (p StorePatch) Apply(s Store) Store {
	if p.ShopName != nil {
		s.ShopName = *p.ShopName
	}
	if p.OwnerName != nil {
		s.OwnerName = *p.OwnerName
	}
	if p.OwnerPhone != nil {
		s.OwnerPhone = *p.OwnerPhone
	}
	if p.ShopAddress != nil {
		s.ShopAddress = *p.ShopAddress
	}
	if p.OwnerPhotoURL != nil {
		s.OwnerPhotoURL = *p.OwnerPhotoURL
	}
	if p.StorefrontURL != nil {
		s.StorefrontURL = *p.StorefrontURL
	}
	if p.ShopOpen != nil {
		s.ShopOpen = *p.ShopOpen
	}
	if p.Position != nil {
		pos := *p.Position
		s.Position = &pos
	}
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		s.UpdatedAt = &t
	}
	if p.RelocatedAt != nil {
		t := *p.RelocatedAt
		s.RelocatedAt = &t
	}

	return s
}
