package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterStoreInput represents the data required to register a new store
type RegisterStoreInput struct {
	ShopName      string   `json:"shop_name" validate:"required,max=120"`
	OwnerName     string   `json:"owner_name" validate:"required,max=120"`
	OwnerPhone    string   `json:"owner_phone" validate:"omitempty,max=32"`
	ShopAddress   string   `json:"shop_address" validate:"omitempty,max=500"`
	OwnerPhotoURL string   `json:"owner_photo_url" validate:"omitempty,url"`
	StorefrontURL string   `json:"storefront_url" validate:"omitempty,url"`
	Latitude      *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude     *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,longitude"`
}

// EditStoreInput represents a partial update of store details
type EditStoreInput struct {
	ShopName      *string `json:"shop_name" validate:"omitempty,min=1,max=120"`
	OwnerName     *string `json:"owner_name" validate:"omitempty,min=1,max=120"`
	OwnerPhone    *string `json:"owner_phone" validate:"omitempty,max=32"`
	ShopAddress   *string `json:"shop_address" validate:"omitempty,max=500"`
	OwnerPhotoURL *string `json:"owner_photo_url" validate:"omitempty,url"`
	StorefrontURL *string `json:"storefront_url" validate:"omitempty,url"`
}

// SetShopOpenInput opens or closes a shop, optionally pinning its current position
type SetShopOpenInput struct {
	Open      bool     `json:"open"`
	Latitude  *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,longitude"`
}

// RelocateStoreInput moves a shop to a new position
type RelocateStoreInput struct {
	Latitude      float64 `json:"latitude" validate:"latitude"`
	Longitude     float64 `json:"longitude" validate:"longitude"`
	Note          string  `json:"note" validate:"omitempty,max=500"`
	OpenAfterMove bool    `json:"open_after_move"`
}

// AddProductInput represents a catalogue entry to append
type AddProductInput struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
}

// StoreUsecase defines seller-side store management. Every mutation is owner-only.
type StoreUsecase interface {
	RegisterStore(ctx context.Context, ownerID string, input *RegisterStoreInput) (*entity.Store, error)
	GetOwnerStores(ctx context.Context, ownerID string) ([]*entity.Store, error)
	GetStore(ctx context.Context, storeID string) (*entity.Store, error)
	EditStore(ctx context.Context, ownerID, storeID string, input *EditStoreInput) (*entity.Store, error)

	// SetShopOpen toggles the open flag. Opening a closed shop announces it to followers.
	SetShopOpen(ctx context.Context, ownerID, storeID string, input *SetShopOpenInput) (*entity.Store, error)

	// RelocateStore moves the shop. The note replaces the address when given.
	RelocateStore(ctx context.Context, ownerID, storeID string, input *RelocateStoreInput) (*entity.Store, error)

	AddProduct(ctx context.Context, ownerID, storeID string, input *AddProductInput) (*entity.Product, error)
	RemoveProduct(ctx context.Context, ownerID, storeID, productID string) error
	DeleteStore(ctx context.Context, ownerID, storeID string) error
}
