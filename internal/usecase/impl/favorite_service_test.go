package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/memory"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// favoriteServiceFixtures holds all test dependencies for favorite service tests.
type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	favoriteRepo *mockRepo.MockFavoriteRepository
	identity     *mockSvc.MockIdentityProvider
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)

	return favoriteServiceFixtures{
		service:      NewFavoriteService(favoriteRepo, identity, newDiscardLogger()),
		favoriteRepo: favoriteRepo,
		identity:     identity,
	}
}

func appleVandi() *entity.Store {
	return &entity.Store{
		ID:         "apple-vandi",
		OwnerID:    "seller-1",
		ShopName:   "Apple Vandi",
		OwnerName:  "Meena",
		OwnerPhone: "+91 98765 43210",
		ShopOpen:   true,
		Position:   &entity.Coordinate{Latitude: 10.80, Longitude: 78.60},
	}
}

func TestFavoriteService_CheckFavorite_SignInRequired(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	fx.identity.EXPECT().CurrentUserID(ctx).Return("", domainerrors.ErrSignInRequired)

	_, err := fx.service.CheckFavorite(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrSignInRequired)
}

func TestFavoriteService_CheckFavorite_RepositoryError(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()

	fx.identity.EXPECT().CurrentUserID(ctx).Return("u1", nil)
	fx.favoriteRepo.EXPECT().Exists(ctx, "u1", "s1").Return(false, errors.New("unavailable"))

	_, err := fx.service.CheckFavorite(ctx, "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check favorite")
}

func TestFavoriteService_ToggleFavorite_Creates(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	store := appleVandi()

	fx.identity.EXPECT().CurrentUserID(ctx).Return("u1", nil)
	fx.favoriteRepo.EXPECT().Exists(ctx, "u1", store.ID).Return(false, nil)
	fx.favoriteRepo.EXPECT().Create(ctx, mock.MatchedBy(func(fav *entity.Favorite) bool {
		return fav.ID == "u1_apple-vandi" &&
			fav.StoreName == "Apple Vandi" &&
			fav.OwnerNumber == store.OwnerPhone &&
			fav.Latitude != nil && *fav.Latitude == 10.80
	})).Return(nil)

	favorited, err := fx.service.ToggleFavorite(ctx, store)
	require.NoError(t, err)
	assert.True(t, favorited)
}

func TestFavoriteService_ToggleFavorite_Deletes(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	store := appleVandi()

	fx.identity.EXPECT().CurrentUserID(ctx).Return("u1", nil)
	fx.favoriteRepo.EXPECT().Exists(ctx, "u1", store.ID).Return(true, nil)
	fx.favoriteRepo.EXPECT().Delete(ctx, "u1", store.ID).Return(nil)

	favorited, err := fx.service.ToggleFavorite(ctx, store)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteService_ToggleFavorite_LostCreateRace(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	store := appleVandi()

	fx.identity.EXPECT().CurrentUserID(ctx).Return("u1", nil)
	fx.favoriteRepo.EXPECT().Exists(ctx, "u1", store.ID).Return(false, nil)
	fx.favoriteRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrFavoriteExists)

	favorited, err := fx.service.ToggleFavorite(ctx, store)
	require.NoError(t, err)
	assert.True(t, favorited)
}

func TestFavoriteService_ToggleFavorite_CreateFails(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	store := appleVandi()

	fx.identity.EXPECT().CurrentUserID(ctx).Return("u1", nil)
	fx.favoriteRepo.EXPECT().Exists(ctx, "u1", store.ID).Return(false, nil)
	fx.favoriteRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("quota exceeded"))

	_, err := fx.service.ToggleFavorite(ctx, store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestFavoriteService_ToggleFavorite_RequiresStore(t *testing.T) {
	fx := createTestFavoriteService(t)

	_, err := fx.service.ToggleFavorite(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFavoriteService_ToggleTwiceRoundTrips(t *testing.T) {
	db := memory.NewDB()
	svc := NewFavoriteService(memory.NewFavoriteRepository(db, "fav"), auth.NewIdentityProvider(), newDiscardLogger())
	ctx := auth.WithCachedUserID(context.Background(), "u1")
	store := appleVandi()

	first, err := svc.ToggleFavorite(ctx, store)
	require.NoError(t, err)
	assert.True(t, first)

	_, exists := db.Get("fav", entity.FavoriteKey("u1", store.ID))
	assert.True(t, exists, "the record id is derived from the user and the store")

	second, err := svc.ToggleFavorite(ctx, store)
	require.NoError(t, err)
	assert.False(t, second)

	favorited, err := svc.CheckFavorite(ctx, store.ID)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteService_ListAndCount(t *testing.T) {
	db := memory.NewDB()
	svc := NewFavoriteService(memory.NewFavoriteRepository(db, "fav"), auth.NewIdentityProvider(), newDiscardLogger())
	ctx := auth.WithIdentity(context.Background(), &service.Identity{UserID: "u1"})

	for _, id := range []string{"a", "b"} {
		_, err := svc.ToggleFavorite(ctx, &entity.Store{ID: id, ShopName: id})
		require.NoError(t, err)
	}

	favorites, err := svc.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favorites, 2)

	count, err := svc.CountFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = svc.CountFavorites(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrSignInRequired)
}

func TestFavoriteService_RemoveFavorite(t *testing.T) {
	db := memory.NewDB()
	svc := NewFavoriteService(memory.NewFavoriteRepository(db, "fav"), auth.NewIdentityProvider(), newDiscardLogger())
	ctx := auth.WithIdentity(context.Background(), &service.Identity{UserID: "u1"})

	_, err := svc.ToggleFavorite(ctx, appleVandi())
	require.NoError(t, err)

	removed, err := svc.RemoveFavorite(ctx, "apple-vandi")
	require.NoError(t, err)
	assert.True(t, removed)

	count, err := svc.CountFavorites(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	removed, err = svc.RemoveFavorite(ctx, "apple-vandi")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = svc.RemoveFavorite(context.Background(), "apple-vandi")
	assert.ErrorIs(t, err, domainerrors.ErrSignInRequired)
}
