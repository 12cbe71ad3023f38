package firestoredb

import (
	"context"
	"os"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStatusHelpers(t *testing.T) {
	assert.True(t, isNotFound(status.Error(codes.NotFound, "missing")))
	assert.False(t, isNotFound(status.Error(codes.Internal, "boom")))
	assert.True(t, isAlreadyExists(status.Error(codes.AlreadyExists, "dup")))
	assert.False(t, isAlreadyExists(errors.New("plain")))
}

func TestFieldUpdate(t *testing.T) {
	assert.Equal(t, firestore.Update{Path: "shopName", Value: "x"}, fieldUpdate("shopName", "x", false))
	assert.Equal(t, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp}, fieldUpdate("updatedAt", time.Now(), true))
}

// newEmulatorClient connects to the Firestore emulator, skipping when it is not running.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "storefront-test")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client
}

func TestFavoriteRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewFavoriteRepository(client, "fav_"+time.Now().Format("150405.000000"))
	ctx := context.Background()

	store := &entity.Store{ID: "s1", ShopName: "Apple Vandi", Position: &entity.Coordinate{Latitude: 10.8, Longitude: 78.6}}
	require.NoError(t, repo.Create(ctx, entity.NewFavorite("u1", store)))
	assert.ErrorIs(t, repo.Create(ctx, entity.NewFavorite("u1", store)), repository.ErrFavoriteExists)

	exists, err := repo.Exists(ctx, "u1", "s1")
	require.NoError(t, err)
	assert.True(t, exists)

	count, err := repo.CountByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.Delete(ctx, "u1", "s1"))
	require.NoError(t, repo.Delete(ctx, "u1", "s1"))

	exists, err = repo.Exists(ctx, "u1", "s1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStoreRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewStoreRepository(client, "store_"+time.Now().Format("150405.000000"))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stream, err := repo.WatchOpenStores(ctx)
	require.NoError(t, err)
	defer stream.Stop()

	first, err := stream.Next(ctx)
	require.NoError(t, err)
	assert.Empty(t, first.Stores)

	store := &entity.Store{ShopName: "Mart Express", ShopOpen: true, Position: &entity.Coordinate{Latitude: 10.8, Longitude: 78.6}}
	require.NoError(t, repo.CreateStore(ctx, store))

	second, err := stream.Next(ctx)
	require.NoError(t, err)
	require.Len(t, second.Stores, 1)
	assert.Equal(t, store.ID, second.Stores[0].ID)

	stream.Stop()
	_, err = stream.Next(ctx)
	assert.ErrorIs(t, err, repository.ErrStreamStopped)
}
