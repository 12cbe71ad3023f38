package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrFavoriteExists is returned by Create when the deterministic key is already taken.
var ErrFavoriteExists = errors.New("favorite already exists")

// FavoriteRepository defines the interface for favorite document operations.
// Every operation addresses a document by entity.FavoriteKey.
type FavoriteRepository interface {
	// Exists reports whether the favorite linking userID and storeID exists.
	Exists(ctx context.Context, userID, storeID string) (bool, error)

	// Create inserts a favorite with a server-assigned creation time.
	// Returns ErrFavoriteExists if the key is already present.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the favorite. Deleting a missing favorite is not an error.
	Delete(ctx context.Context, userID, storeID string) error

	// FindByUser lists a user's favorites, newest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.Favorite, error)

	// CountByUser returns how many favorites a user has.
	CountByUser(ctx context.Context, userID string) (int, error)
}
