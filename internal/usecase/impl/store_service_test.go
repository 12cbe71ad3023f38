package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storeServiceFixtures holds all test dependencies for store service tests.
type storeServiceFixtures struct {
	service   usecase.StoreUsecase
	storeRepo *mockRepo.MockStoreRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return storeServiceFixtures{
		service:   NewStoreService(storeRepo, publisher, newDiscardLogger()),
		storeRepo: storeRepo,
		publisher: publisher,
	}
}

func closedStore() *entity.Store {
	return &entity.Store{
		ID:          "s1",
		OwnerID:     "seller-1",
		ShopName:    "Apple Vandi",
		OwnerName:   "Meena",
		ShopAddress: "Main Road",
		ShopOpen:    false,
		Position:    &entity.Coordinate{Latitude: 10.80, Longitude: 78.60},
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestStoreService_RegisterStore(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().CreateStore(ctx, mock.MatchedBy(func(store *entity.Store) bool {
		return store.ID != "" &&
			store.OwnerID == "seller-1" &&
			store.ShopName == "Apple Vandi" &&
			!store.ShopOpen &&
			store.Position != nil && store.Position.Latitude == 10.80 &&
			store.CreatedAt != nil
	})).Return(nil)

	store, err := fx.service.RegisterStore(ctx, "seller-1", &usecase.RegisterStoreInput{
		ShopName:  " Apple Vandi ",
		OwnerName: "Meena",
		Latitude:  floatPtr(10.80),
		Longitude: floatPtr(78.60),
	})
	require.NoError(t, err)
	assert.Equal(t, "Apple Vandi", store.ShopName)
	assert.Empty(t, store.Products)
}

func TestStoreService_RegisterStore_Validation(t *testing.T) {
	fx := createTestStoreService(t)

	_, err := fx.service.RegisterStore(context.Background(), "seller-1", &usecase.RegisterStoreInput{ShopName: "  ", OwnerName: "Meena"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.RegisterStore(context.Background(), "", &usecase.RegisterStoreInput{ShopName: "A", OwnerName: "B"})
	assert.ErrorIs(t, err, domainerrors.ErrSignInRequired)
}

func TestStoreService_GetStore_NotFound(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindStoreByID(ctx, "missing").Return(nil, repository.ErrStoreNotFound)

	_, err := fx.service.GetStore(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_EditStore_OwnershipViolation(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	name := "Stolen"

	fx.storeRepo.EXPECT().FindStoreByID(ctx, "s1").Return(closedStore(), nil)

	_, err := fx.service.EditStore(ctx, "someone-else", "s1", &usecase.EditStoreInput{ShopName: &name})
	assert.ErrorIs(t, err, domainerrors.ErrStoreOwnershipViolation)
}

func TestStoreService_EditStore_PartialUpdate(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	phone := " 12345 "

	fx.storeRepo.EXPECT().FindStoreByID(ctx, "s1").Return(closedStore(), nil)
	fx.storeRepo.EXPECT().UpdateStore(ctx, "s1", mock.MatchedBy(func(patch entity.StorePatch) bool {
		return patch.OwnerPhone != nil && *patch.OwnerPhone == "12345" &&
			patch.ShopName == nil && patch.ShopOpen == nil && patch.UpdatedAt != nil
	})).Return(nil)

	store, err := fx.service.EditStore(ctx, "seller-1", "s1", &usecase.EditStoreInput{OwnerPhone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "12345", store.OwnerPhone)
	assert.Equal(t, "Apple Vandi", store.ShopName)
}

func TestStoreService_EditStore_EmptyPatchIsNoop(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindStoreByID(ctx, "s1").Return(closedStore(), nil)

	store, err := fx.service.EditStore(ctx, "seller-1", "s1", &usecase.EditStoreInput{})
	require.NoError(t, err)
	assert.Equal(t, "s1", store.ID)
}

func TestStoreService_SetShopOpen_PublishesOnOpen(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindStoreByID(ctx, "s1").Return(closedStore(), nil)
	fx.storeRepo.EXPECT().UpdateStore(ctx, "s1", mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishStoreEvent(ctx, mock.MatchedBy(func(event *service.StoreEvent) bool {
		return event.Type == service.StoreEventOpened && event.StoreID == "s1" && event.ShopName == "Apple Vandi"
	})).Return(nil).Once()

	store, err := fx.service.SetShopOpen(ctx, "seller-1", "s1", &usecase.SetShopOpenInput{Open: true})
	require.NoError(t, err)
	assert.True(t, store.ShopOpen)
}

func TestStoreService_SetShopOpen_AlreadyOpenDoesNotPublish(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	open := closedStore()
	open.ShopOpen = true

	fx.storeRepo.EXPECT().FindStoreByID(ctx, "s1").Return(open, nil)
	fx.storeRepo.EXPECT().UpdateStore(ctx, "s1", mock.MatchedBy(func(patch entity.StorePatch) bool {
		return patch.Position != nil && patch.Position.Latitude == 11.0
	})).Return(nil)

	store, err := fx.service.SetShopOpen(ctx, "seller-1", "s1", &usecase.SetShopOpenInput{
		Open:      true,
		Latitude:  floatPtr(11.0),
		Longitude: floatPtr(79.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 11.0, store.Position.Latitude)
}

func TestStoreService_SetShopOpen_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindStoreByID(ctx, "s1").Return(closedStore(), nil)
	fx.storeRepo.EXPECT().UpdateStore(ctx, "s1", mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishStoreEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.SetShopOpen(ctx, "seller-1", "s1", &usecase.SetShopOpenInput{Open: true})
	assert.NoError(t, err)
}

func TestStoreService_RelocateStore(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindStoreByID(ctx, "s1").Return(closedStore(), nil)
	fx.storeRepo.EXPECT().UpdateStore(ctx, "s1", mock.MatchedBy(func(patch entity.StorePatch) bool {
		return patch.ShopAddress != nil && *patch.ShopAddress == "Near the bus stand" &&
			patch.RelocatedAt != nil && patch.ShopOpen != nil && *patch.ShopOpen
	})).Return(nil)
	fx.publisher.EXPECT().PublishStoreEvent(ctx, mock.MatchedBy(func(event *service.StoreEvent) bool {
		return event.Type == service.StoreEventRelocated && event.Latitude == 10.9
	})).Return(nil).Once()
	fx.publisher.EXPECT().PublishStoreEvent(ctx, mock.MatchedBy(func(event *service.StoreEvent) bool {
		return event.Type == service.StoreEventOpened
	})).Return(nil).Once()

	store, err := fx.service.RelocateStore(ctx, "seller-1", "s1", &usecase.RelocateStoreInput{
		Latitude:      10.9,
		Longitude:     78.7,
		Note:          "Near the bus stand",
		OpenAfterMove: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Near the bus stand", store.ShopAddress)
	assert.True(t, store.ShopOpen)
}

func TestStoreService_RelocateStore_KeepsAddressWithoutNote(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindStoreByID(ctx, "s1").Return(closedStore(), nil)
	fx.storeRepo.EXPECT().UpdateStore(ctx, "s1", mock.MatchedBy(func(patch entity.StorePatch) bool {
		return patch.ShopAddress != nil && *patch.ShopAddress == "Main Road"
	})).Return(nil)
	fx.publisher.EXPECT().PublishStoreEvent(ctx, mock.Anything).Return(nil).Once()

	store, err := fx.service.RelocateStore(ctx, "seller-1", "s1", &usecase.RelocateStoreInput{Latitude: 10.9, Longitude: 78.7})
	require.NoError(t, err)
	assert.False(t, store.ShopOpen)
}

func TestStoreService_RemoveProduct_NotFound(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindStoreByID(ctx, "s1").Return(closedStore(), nil)
	fx.storeRepo.EXPECT().RemoveProduct(ctx, "s1", "p9").Return(errors.WithStack(repository.ErrProductNotFound))

	err := fx.service.RemoveProduct(ctx, "seller-1", "s1", "p9")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestStoreService_AddProduct_Validation(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindStoreByID(ctx, "s1").Return(closedStore(), nil)

	_, err := fx.service.AddProduct(ctx, "seller-1", "s1", &usecase.AddProductInput{Name: "Apple", Price: -1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStoreService_CatalogueOnMemoryStore(t *testing.T) {
	db := memory.NewDB()
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewStoreService(memory.NewStoreRepository(db, "store"), publisher, newDiscardLogger())
	ctx := context.Background()

	store, err := svc.RegisterStore(ctx, "seller-1", &usecase.RegisterStoreInput{ShopName: "Apple Vandi", OwnerName: "Meena"})
	require.NoError(t, err)

	product, err := svc.AddProduct(ctx, "seller-1", store.ID, &usecase.AddProductInput{Name: "Apple", Price: 120})
	require.NoError(t, err)
	require.NotEmpty(t, product.ID)

	loaded, err := svc.GetStore(ctx, store.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Products, 1)
	assert.Equal(t, "Apple", loaded.Products[0].Name)

	require.NoError(t, svc.RemoveProduct(ctx, "seller-1", store.ID, product.ID))
	loaded, err = svc.GetStore(ctx, store.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Products)

	owned, err := svc.GetOwnerStores(ctx, "seller-1")
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	require.NoError(t, svc.DeleteStore(ctx, "seller-1", store.ID))
	_, err = svc.GetStore(ctx, store.ID)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}
