package memory

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_Lifecycle(t *testing.T) {
	db := NewDB()
	clock := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	db.SetClock(func() time.Time {
		clock = clock.Add(time.Minute)

		return clock
	})
	repo := NewFavoriteRepository(db, "fav")
	ctx := context.Background()

	storeA := &entity.Store{ID: "a", ShopName: "A"}
	storeB := &entity.Store{ID: "b", ShopName: "B"}

	require.NoError(t, repo.Create(ctx, entity.NewFavorite("u1", storeA)))
	require.NoError(t, repo.Create(ctx, entity.NewFavorite("u1", storeB)))
	assert.ErrorIs(t, repo.Create(ctx, entity.NewFavorite("u1", storeA)), repository.ErrFavoriteExists)

	_, stored := db.Get("fav", "u1_a")
	assert.True(t, stored)

	exists, err := repo.Exists(ctx, "u1", "a")
	require.NoError(t, err)
	assert.True(t, exists)

	list, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].StoreID, "newest first")

	require.NoError(t, repo.Delete(ctx, "u1", "a"))
	require.NoError(t, repo.Delete(ctx, "u1", "a"))

	count, err := repo.CountByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
