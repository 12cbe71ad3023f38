// Package persistence selects the document store backing the repositories.
package persistence

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	fbinfra "storefront/internal/infra/firebase"
	"storefront/internal/infra/persistence/firestoredb"
	"storefront/internal/infra/persistence/memory"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Apps   *fbinfra.Apps
	Logger *slog.Logger
}

// Repositories are the repositories built on the configured store.
type Repositories struct {
	fx.Out

	Stores    repository.StoreRepository
	Favorites repository.FavoriteRepository
}

// New builds the repositories for store.provider.
func New(params Params) (Repositories, error) {
	cfg := params.Config.Store

	switch cfg.Provider {
	case constants.StoreProviderMemory:
		params.Logger.Warn("Using in-memory document store, data is lost on restart")
		db := memory.NewDB()

		return Repositories{
			Stores:    memory.NewStoreRepository(db, cfg.StoreCollection),
			Favorites: memory.NewFavoriteRepository(db, cfg.FavoriteCollection),
		}, nil

	case constants.StoreProviderFirestore:
		client, err := params.Apps.Firestore(params.Ctx)
		if err != nil {
			return Repositories{}, errors.Wrap(err, "failed to create Firestore client")
		}
		params.Logger.Info("Using Firestore document store",
			slog.String("store_collection", cfg.StoreCollection),
			slog.String("favorite_collection", cfg.FavoriteCollection),
		)

		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return ping(ctx, client, cfg.StoreCollection)
			},
		})

		return Repositories{
			Stores:    firestoredb.NewStoreRepository(client, cfg.StoreCollection),
			Favorites: firestoredb.NewFavoriteRepository(client, cfg.FavoriteCollection),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store provider: %s", cfg.Provider)
	}
}

// ping reads at most one document to prove the credentials and project are usable.
func ping(ctx context.Context, client *firestore.Client, collection string) error {
	iter := client.Collection(collection).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return errors.Wrap(err, "failed to reach Firestore")
	}

	return nil
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
