package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// FavoriteUsecase defines the favorites ledger for the signed-in user.
type FavoriteUsecase interface {
	// CheckFavorite reports whether the current user has favorited the store
	CheckFavorite(ctx context.Context, storeID string) (bool, error)

	// ToggleFavorite flips the favorite state and returns the new state
	ToggleFavorite(ctx context.Context, store *entity.Store) (bool, error)

	// RemoveFavorite deletes the favorite by store id alone, for stores that no
	// longer exist. It reports whether there was one to delete.
	RemoveFavorite(ctx context.Context, storeID string) (bool, error)

	// ListFavorites lists the current user's favorites, newest first
	ListFavorites(ctx context.Context) ([]*entity.Favorite, error)

	// CountFavorites returns how many favorites the current user has
	CountFavorites(ctx context.Context) (int, error)
}
