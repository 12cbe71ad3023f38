package memory

import (
	"context"
	"sort"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/document"
)

type favoriteRepository struct {
	db         *DB
	collection string
}

// NewFavoriteRepository creates a favorite repository over the in-memory database.
func NewFavoriteRepository(db *DB, collection string) repository.FavoriteRepository {
	return &favoriteRepository{db: db, collection: collection}
}

func (r *favoriteRepository) Exists(_ context.Context, userID, storeID string) (bool, error) {
	_, ok := r.db.Get(r.collection, entity.FavoriteKey(userID, storeID))

	return ok, nil
}

func (r *favoriteRepository) Create(_ context.Context, fav *entity.Favorite) error {
	key := entity.FavoriteKey(fav.UserID, fav.StoreID)
	now := r.db.Now()

	err := r.db.Mutate(r.collection, key, func(_ map[string]any, exists bool) (map[string]any, error) {
		if exists {
			return nil, repository.ErrFavoriteExists
		}
		fields := document.FavoriteFields(fav)
		fields[document.FieldCreatedAt] = now

		return fields, nil
	})
	if err != nil {
		return err
	}

	fav.ID = key
	fav.CreatedAt = &now

	return nil
}

func (r *favoriteRepository) Delete(_ context.Context, userID, storeID string) error {
	r.db.Delete(r.collection, entity.FavoriteKey(userID, storeID))

	return nil
}

func (r *favoriteRepository) FindByUser(_ context.Context, userID string) ([]*entity.Favorite, error) {
	docs := r.db.Query(r.collection, func(data map[string]any) bool {
		owner, _ := data[document.FieldUserID].(string)

		return owner == userID
	})

	favorites := make([]*entity.Favorite, 0, len(docs))
	for _, doc := range docs {
		fav, err := document.ParseFavorite(r.collection, doc.ID, doc.Data)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
	}

	sort.SliceStable(favorites, func(i, j int) bool {
		a, b := favorites[i].CreatedAt, favorites[j].CreatedAt
		if a == nil || b == nil {
			return b == nil && a != nil
		}

		return a.After(*b)
	})

	return favorites, nil
}

func (r *favoriteRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	favorites, err := r.FindByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	return len(favorites), nil
}
