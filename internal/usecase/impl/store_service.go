package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	storeRepo repository.StoreRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewStoreService is the constructor for storeService.
func NewStoreService(
	storeRepo repository.StoreRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return &storeService{
		storeRepo: storeRepo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// RegisterStore creates a closed store owned by ownerID.
func (srv *storeService) RegisterStore(ctx context.Context, ownerID string, input *usecase.RegisterStoreInput) (*entity.Store, error) {
	if ownerID == "" {
		return nil, domainerrors.ErrSignInRequired
	}
	if strings.TrimSpace(input.ShopName) == "" || strings.TrimSpace(input.OwnerName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shop name and owner name are required")
	}

	now := srv.now()
	store := &entity.Store{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		ShopName:      strings.TrimSpace(input.ShopName),
		OwnerName:     strings.TrimSpace(input.OwnerName),
		OwnerPhone:    strings.TrimSpace(input.OwnerPhone),
		ShopAddress:   input.ShopAddress,
		OwnerPhotoURL: input.OwnerPhotoURL,
		StorefrontURL: input.StorefrontURL,
		ShopOpen:      false,
		Products:      []entity.Product{},
		CreatedAt:     &now,
		UpdatedAt:     &now,
	}
	if input.Latitude != nil && input.Longitude != nil {
		store.Position = &entity.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	}

	if err := srv.storeRepo.CreateStore(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	srv.logger.Info("Store registered", "storeID", store.ID, "ownerID", ownerID)

	return store, nil
}

// GetOwnerStores lists the stores registered by ownerID.
func (srv *storeService) GetOwnerStores(ctx context.Context, ownerID string) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.FindStoresByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner stores: %w", err)
	}

	return stores, nil
}

// GetStore retrieves a store by id.
func (srv *storeService) GetStore(ctx context.Context, storeID string) (*entity.Store, error) {
	store, err := srv.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, fmt.Errorf("failed to find store: %w", err)
	}

	return store, nil
}

// EditStore updates the descriptive fields of a store.
func (srv *storeService) EditStore(ctx context.Context, ownerID, storeID string, input *usecase.EditStoreInput) (*entity.Store, error) {
	store, err := srv.ownedStore(ctx, ownerID, storeID)
	if err != nil {
		return nil, err
	}

	patch := entity.StorePatch{
		ShopName:      trimmed(input.ShopName),
		OwnerName:     trimmed(input.OwnerName),
		OwnerPhone:    trimmed(input.OwnerPhone),
		ShopAddress:   input.ShopAddress,
		OwnerPhotoURL: input.OwnerPhotoURL,
		StorefrontURL: input.StorefrontURL,
	}
	if patch.IsEmpty() {
		return store, nil
	}
	if (patch.ShopName != nil && *patch.ShopName == "") || (patch.OwnerName != nil && *patch.OwnerName == "") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shop name and owner name cannot be blank")
	}

	return srv.update(ctx, store, patch)
}

// SetShopOpen opens or closes a shop. Opening a closed shop publishes a store_opened event.
func (srv *storeService) SetShopOpen(ctx context.Context, ownerID, storeID string, input *usecase.SetShopOpenInput) (*entity.Store, error) {
	store, err := srv.ownedStore(ctx, ownerID, storeID)
	if err != nil {
		return nil, err
	}

	open := input.Open
	patch := entity.StorePatch{ShopOpen: &open}
	if input.Latitude != nil && input.Longitude != nil {
		patch.Position = &entity.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	}

	wasOpen := store.ShopOpen
	updated, err := srv.update(ctx, store, patch)
	if err != nil {
		return nil, err
	}
	if !wasOpen && updated.ShopOpen {
		srv.announce(ctx, service.StoreEventOpened, updated)
	}

	return updated, nil
}

// RelocateStore moves a shop and optionally opens it at the new spot.
func (srv *storeService) RelocateStore(ctx context.Context, ownerID, storeID string, input *usecase.RelocateStoreInput) (*entity.Store, error) {
	store, err := srv.ownedStore(ctx, ownerID, storeID)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	address := store.ShopAddress
	if note := strings.TrimSpace(input.Note); note != "" {
		address = note
	}
	open := input.OpenAfterMove
	patch := entity.StorePatch{
		Position:    &entity.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude},
		ShopAddress: &address,
		ShopOpen:    &open,
		RelocatedAt: &now,
	}

	wasOpen := store.ShopOpen
	updated, err := srv.update(ctx, store, patch)
	if err != nil {
		return nil, err
	}

	srv.announce(ctx, service.StoreEventRelocated, updated)
	if !wasOpen && updated.ShopOpen {
		srv.announce(ctx, service.StoreEventOpened, updated)
	}

	return updated, nil
}

// AddProduct appends a product with a generated id to the catalogue.
func (srv *storeService) AddProduct(ctx context.Context, ownerID, storeID string, input *usecase.AddProductInput) (*entity.Product, error) {
	if _, err := srv.ownedStore(ctx, ownerID, storeID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price cannot be negative")
	}

	now := srv.now()
	product := entity.Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Description: input.Description,
		CreatedAt:   &now,
	}
	if err := srv.storeRepo.AddProduct(ctx, storeID, product); err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	return &product, nil
}

// RemoveProduct removes a product from the catalogue.
func (srv *storeService) RemoveProduct(ctx context.Context, ownerID, storeID, productID string) error {
	if _, err := srv.ownedStore(ctx, ownerID, storeID); err != nil {
		return err
	}

	if err := srv.storeRepo.RemoveProduct(ctx, storeID, productID); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return domainerrors.ErrProductNotFound
		case errors.Is(err, repository.ErrStoreNotFound):
			return domainerrors.ErrStoreNotFound
		}

		return fmt.Errorf("failed to remove product: %w", err)
	}

	return nil
}

// DeleteStore removes a store.
func (srv *storeService) DeleteStore(ctx context.Context, ownerID, storeID string) error {
	if _, err := srv.ownedStore(ctx, ownerID, storeID); err != nil {
		return err
	}

	if err := srv.storeRepo.DeleteStore(ctx, storeID); err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	srv.logger.Info("Store deleted", "storeID", storeID, "ownerID", ownerID)

	return nil
}

// ownedStore loads a store and verifies that ownerID registered it.
func (srv *storeService) ownedStore(ctx context.Context, ownerID, storeID string) (*entity.Store, error) {
	if ownerID == "" {
		return nil, domainerrors.ErrSignInRequired
	}

	store, err := srv.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store.OwnerID != ownerID {
		srv.logger.Warn("Store ownership violation", "storeID", storeID, "ownerID", ownerID)

		return nil, domainerrors.ErrStoreOwnershipViolation
	}

	return store, nil
}

func (srv *storeService) update(ctx context.Context, store *entity.Store, patch entity.StorePatch) (*entity.Store, error) {
	now := srv.now()
	patch.UpdatedAt = &now

	if err := srv.storeRepo.UpdateStore(ctx, store.ID, patch); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	updated := patch.Apply(*store)

	return &updated, nil
}

// announce publishes a store event. Failures are logged and do not fail the update.
func (srv *storeService) announce(ctx context.Context, eventType service.StoreEventType, store *entity.Store) {
	event := &service.StoreEvent{
		RequestID: uuid.NewString(),
		Type:      eventType,
		StoreID:   store.ID,
		OwnerID:   store.OwnerID,
		ShopName:  store.ShopName,
		Address:   store.ShopAddress,
	}
	if store.Position != nil {
		event.Latitude = store.Position.Latitude
		event.Longitude = store.Position.Longitude
	}

	if err := srv.publisher.PublishStoreEvent(ctx, event); err != nil {
		srv.logger.Error("Failed to publish store event", "type", eventType, "storeID", store.ID, slog.Any("error", err))

		return
	}
	srv.logger.Info("Store event published", "type", eventType, "storeID", store.ID)
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)

	return &v
}
