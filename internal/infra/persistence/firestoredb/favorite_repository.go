package firestoredb

import (
	"context"
	"sort"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/document"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/pkg/errors"
)

const countAlias = "all"

// favoriteRepository implements the domain.FavoriteRepository interface.
type favoriteRepository struct {
	client     *firestore.Client
	collection string
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(client *firestore.Client, collection string) repository.FavoriteRepository {
	return &favoriteRepository{client: client, collection: collection}
}

func (repo *favoriteRepository) doc(userID, storeID string) *firestore.DocumentRef {
	return repo.client.Collection(repo.collection).Doc(entity.FavoriteKey(userID, storeID))
}

func (repo *favoriteRepository) byUser(userID string) firestore.Query {
	return repo.client.Collection(repo.collection).Where(document.FieldUserID, "==", userID)
}

// Exists checks the deterministic key.
func (repo *favoriteRepository) Exists(ctx context.Context, userID, storeID string) (bool, error) {
	snap, err := repo.doc(userID, storeID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, domainerrors.NewDocumentStoreError(errors.WithStack(err), "failed to check favorite")
	}

	return snap.Exists(), nil
}

// Create uses a create precondition so two racing toggles cannot both insert.
func (repo *favoriteRepository) Create(ctx context.Context, fav *entity.Favorite) error {
	ref := repo.doc(fav.UserID, fav.StoreID)

	fields := document.FavoriteFields(fav)
	fields[document.FieldCreatedAt] = firestore.ServerTimestamp

	result, err := ref.Create(ctx, fields)
	if err != nil {
		if isAlreadyExists(err) {
			return repository.ErrFavoriteExists
		}

		return domainerrors.NewDocumentStoreError(errors.WithStack(err), "failed to create favorite")
	}

	fav.ID = ref.ID
	fav.CreatedAt = &result.UpdateTime

	return nil
}

// Delete without preconditions, so a missing document is not an error.
func (repo *favoriteRepository) Delete(ctx context.Context, userID, storeID string) error {
	if _, err := repo.doc(userID, storeID).Delete(ctx); err != nil {
		return domainerrors.NewDocumentStoreError(errors.WithStack(err), "failed to delete favorite")
	}

	return nil
}

// FindByUser sorts client-side so the query needs no composite index.
func (repo *favoriteRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	docs, err := repo.byUser(userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDocumentStoreError(errors.WithStack(err), "failed to list favorites")
	}

	favorites := make([]*entity.Favorite, 0, len(docs))
	for _, doc := range docs {
		fav, err := document.ParseFavorite(repo.collection, doc.Ref.ID, doc.Data())
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

// CountByUser runs a server-side count aggregation.
func (repo *favoriteRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	query := repo.byUser(userID)
	result, err := query.NewAggregationQuery().WithCount(countAlias).Get(ctx)
	if err != nil {
		return 0, domainerrors.NewDocumentStoreError(errors.WithStack(err), "failed to count favorites")
	}

	value, ok := result[countAlias].(*firestorepb.Value)
	if !ok {
		return 0, errors.Errorf("unexpected count result type %T", result[countAlias])
	}

	return int(value.GetIntegerValue()), nil
}
