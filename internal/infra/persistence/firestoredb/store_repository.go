package firestoredb

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/document"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// storeRepository implements the domain.StoreRepository interface.
type storeRepository struct {
	client     *firestore.Client
	collection string
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(client *firestore.Client, collection string) repository.StoreRepository {
	return &storeRepository{client: client, collection: collection}
}

func (repo *storeRepository) col() *firestore.CollectionRef {
	return repo.client.Collection(repo.collection)
}

func (repo *storeRepository) openQuery() firestore.Query {
	return repo.col().Where(document.FieldShopStatus, "==", true)
}

func (repo *storeRepository) toSnapshot(docs []*firestore.DocumentSnapshot, readTime time.Time) *repository.StoreSnapshot {
	snap := &repository.StoreSnapshot{
		Stores:   make([]*entity.Store, 0, len(docs)),
		ReadTime: readTime,
	}
	for _, doc := range docs {
		store, err := document.ParseStore(repo.collection, doc.Ref.ID, doc.Data())
		if err != nil {
			snap.Malformed = append(snap.Malformed, err)

			continue
		}
		snap.Stores = append(snap.Stores, store)
	}

	return snap
}

// WatchOpenStores opens a realtime listener on the open-stores query.
// The listener lives until Stop is called or ctx is done.
func (repo *storeRepository) WatchOpenStores(ctx context.Context) (repository.StoreStream, error) {
	return &storeStream{
		repo: repo,
		it:   repo.openQuery().Snapshots(ctx),
	}, nil
}

// FindOpenStores performs a one-shot read of the open-stores query.
func (repo *storeRepository) FindOpenStores(ctx context.Context) (*repository.StoreSnapshot, error) {
	docs, err := repo.openQuery().Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDocumentStoreError(errors.WithStack(err), "failed to read open stores")
	}

	return repo.toSnapshot(docs, time.Now()), nil
}

// FindStoreByID retrieves a store by its document id.
func (repo *storeRepository) FindStoreByID(ctx context.Context, id string) (*entity.Store, error) {
	doc, err := repo.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return document.ParseStore(repo.collection, doc.Ref.ID, doc.Data())
}

// FindStoresByOwner retrieves every store registered by an owner.
func (repo *storeRepository) FindStoresByOwner(ctx context.Context, ownerID string) ([]*entity.Store, error) {
	docs, err := repo.col().Where(document.FieldOwnerID, "==", ownerID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stores by owner")
	}

	stores := make([]*entity.Store, 0, len(docs))
	for _, doc := range docs {
		store, err := document.ParseStore(repo.collection, doc.Ref.ID, doc.Data())
		if err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}

	return stores, nil
}

// CreateStore writes the whole document. This is the only whole-document write;
// every later change goes through UpdateStore.
func (repo *storeRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	ref := repo.col().NewDoc()
	if store.ID != "" {
		ref = repo.col().Doc(store.ID)
	}

	fields := document.StoreFields(store)
	fields[document.FieldCreatedAt] = firestore.ServerTimestamp
	fields[document.FieldUpdatedAt] = firestore.ServerTimestamp

	result, err := ref.Set(ctx, fields)
	if err != nil {
		return domainerrors.NewDocumentStoreError(errors.WithStack(err), "failed to create store")
	}

	store.ID = ref.ID
	store.CreatedAt = &result.UpdateTime
	store.UpdatedAt = &result.UpdateTime

	return nil
}

// UpdateStore applies a partial update; time fields are assigned by the server.
func (repo *storeRepository) UpdateStore(ctx context.Context, id string, patch entity.StorePatch) error {
	patchUpdates := document.PatchUpdates(patch)
	if len(patchUpdates) == 0 {
		return nil
	}

	updates := make([]firestore.Update, 0, len(patchUpdates))
	for _, u := range patchUpdates {
		updates = append(updates, fieldUpdate(u.Path, u.Value, document.IsTimestampField(u.Path)))
	}

	if _, err := repo.col().Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrStoreNotFound
		}

		return domainerrors.NewDocumentStoreError(errors.WithStack(err), "failed to update store")
	}

	return nil
}

// AddProduct appends a catalogue entry with an array union.
func (repo *storeRepository) AddProduct(ctx context.Context, storeID string, product entity.Product) error {
	_, err := repo.col().Doc(storeID).Update(ctx, []firestore.Update{
		{Path: document.FieldProducts, Value: firestore.ArrayUnion(document.ProductFields(product))},
		{Path: document.FieldUpdatedAt, Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrStoreNotFound
		}

		return domainerrors.NewDocumentStoreError(errors.WithStack(err), "failed to add product")
	}

	return nil
}

// RemoveProduct filters the catalogue by product id inside a transaction, since
// an array remove needs the exact stored element.
func (repo *storeRepository) RemoveProduct(ctx context.Context, storeID, productID string) error {
	ref := repo.col().Doc(storeID)

	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrStoreNotFound
			}

			return errors.WithStack(err)
		}

		products, _ := doc.Data()[document.FieldProducts].([]any)
		kept := make([]any, 0, len(products))
		for _, p := range products {
			if m, ok := p.(map[string]any); ok && m[document.FieldProductID] == productID {
				continue
			}
			kept = append(kept, p)
		}
		if len(kept) == len(products) {
			return repository.ErrProductNotFound
		}

		return tx.Update(ref, []firestore.Update{
			{Path: document.FieldProducts, Value: kept},
			{Path: document.FieldUpdatedAt, Value: firestore.ServerTimestamp},
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) || errors.Is(err, repository.ErrProductNotFound) {
			return err
		}

		return domainerrors.NewDocumentStoreError(err, "failed to remove product")
	}

	return nil
}

// DeleteStore removes a store document.
func (repo *storeRepository) DeleteStore(ctx context.Context, id string) error {
	if _, err := repo.col().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewDocumentStoreError(errors.WithStack(err), "failed to delete store")
	}

	return nil
}

// storeStream adapts a query snapshot iterator to repository.StoreStream.
type storeStream struct {
	repo *storeRepository
	it   *firestore.QuerySnapshotIterator
}

// Next blocks on the listener. The per-call ctx is not consulted: the listener
// is bound to the context passed to WatchOpenStores and is released by Stop.
func (s *storeStream) Next(_ context.Context) (*repository.StoreSnapshot, error) {
	snap, err := s.it.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, repository.ErrStreamStopped
		}

		return nil, errors.Wrap(err, "store listener failed")
	}

	docs, err := snap.Documents.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read store snapshot")
	}

	return s.repo.toSnapshot(docs, snap.ReadTime), nil
}

// Stop releases the listener. QuerySnapshotIterator.Stop is idempotent.
func (s *storeStream) Stop() {
	s.it.Stop()
}
