package impl

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// favoriteService implements the FavoriteUsecase interface. It keeps no local state.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	identity     service.IdentityProvider
	logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	identity service.IdentityProvider,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		identity:     identity,
		logger:       logger,
	}
}

// CheckFavorite reports whether the signed-in user has favorited the store.
func (srv *favoriteService) CheckFavorite(ctx context.Context, storeID string) (bool, error) {
	userID, err := srv.identity.CurrentUserID(ctx)
	if err != nil {
		return false, err
	}

	exists, err := srv.favoriteRepo.Exists(ctx, userID, storeID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	return exists, nil
}

// ToggleFavorite deletes an existing favorite or creates a missing one.
func (srv *favoriteService) ToggleFavorite(ctx context.Context, store *entity.Store) (bool, error) {
	if store == nil || store.ID == "" {
		return false, domainerrors.ErrValidationFailed.WithDetails("store is required")
	}

	userID, err := srv.identity.CurrentUserID(ctx)
	if err != nil {
		return false, err
	}

	exists, err := srv.favoriteRepo.Exists(ctx, userID, store.ID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	if exists {
		if err := srv.favoriteRepo.Delete(ctx, userID, store.ID); err != nil {
			return false, fmt.Errorf("failed to remove favorite: %w", err)
		}
		srv.logger.Debug("Favorite removed", "userID", userID, "storeID", store.ID)

		return false, nil
	}

	if err := srv.favoriteRepo.Create(ctx, entity.NewFavorite(userID, store)); err != nil {
		if errors.Is(err, repository.ErrFavoriteExists) {
			return true, nil
		}

		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	srv.logger.Debug("Favorite added", "userID", userID, "storeID", store.ID)

	return true, nil
}

// RemoveFavorite deletes the favorite without needing the store document.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, storeID string) (bool, error) {
	if storeID == "" {
		return false, domainerrors.ErrValidationFailed.WithDetails("store is required")
	}

	userID, err := srv.identity.CurrentUserID(ctx)
	if err != nil {
		return false, err
	}

	exists, err := srv.favoriteRepo.Exists(ctx, userID, storeID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	if !exists {
		return false, nil
	}

	if err := srv.favoriteRepo.Delete(ctx, userID, storeID); err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	srv.logger.Debug("Favorite of missing store removed", "userID", userID, "storeID", storeID)

	return true, nil
}

// ListFavorites lists the signed-in user's favorites, newest first.
func (srv *favoriteService) ListFavorites(ctx context.Context) ([]*entity.Favorite, error) {
	userID, err := srv.identity.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	favorites, err := srv.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	return favorites, nil
}

// CountFavorites returns the number of favorites of the signed-in user.
func (srv *favoriteService) CountFavorites(ctx context.Context) (int, error) {
	userID, err := srv.identity.CurrentUserID(ctx)
	if err != nil {
		return 0, err
	}

	count, err := srv.favoriteRepo.CountByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}

	return count, nil
}
