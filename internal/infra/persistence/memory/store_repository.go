package memory

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/document"

	"github.com/google/uuid"
)

type storeRepository struct {
	db         *DB
	collection string
}

// NewStoreRepository creates a store repository over the in-memory database.
func NewStoreRepository(db *DB, collection string) repository.StoreRepository {
	return &storeRepository{db: db, collection: collection}
}

func isOpen(data map[string]any) bool {
	open, ok := data[document.FieldShopStatus].(bool)

	return ok && open
}

func (r *storeRepository) snapshot() *repository.StoreSnapshot {
	docs := r.db.Query(r.collection, isOpen)
	snap := &repository.StoreSnapshot{
		Stores:   make([]*entity.Store, 0, len(docs)),
		ReadTime: r.db.Now(),
	}
	for _, doc := range docs {
		store, err := document.ParseStore(r.collection, doc.ID, doc.Data)
		if err != nil {
			snap.Malformed = append(snap.Malformed, err)

			continue
		}
		snap.Stores = append(snap.Stores, store)
	}

	return snap
}

func (r *storeRepository) WatchOpenStores(_ context.Context) (repository.StoreStream, error) {
	changes, cancel := r.db.Listen(r.collection)

	return &storeStream{
		repo:    r,
		changes: changes,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}, nil
}

func (r *storeRepository) FindOpenStores(_ context.Context) (*repository.StoreSnapshot, error) {
	return r.snapshot(), nil
}

func (r *storeRepository) FindStoreByID(_ context.Context, id string) (*entity.Store, error) {
	data, ok := r.db.Get(r.collection, id)
	if !ok {
		return nil, repository.ErrStoreNotFound
	}

	return document.ParseStore(r.collection, id, data)
}

func (r *storeRepository) FindStoresByOwner(_ context.Context, ownerID string) ([]*entity.Store, error) {
	docs := r.db.Query(r.collection, func(data map[string]any) bool {
		owner, _ := data[document.FieldOwnerID].(string)

		return owner == ownerID
	})

	stores := make([]*entity.Store, 0, len(docs))
	for _, doc := range docs {
		store, err := document.ParseStore(r.collection, doc.ID, doc.Data)
		if err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}

	return stores, nil
}

func (r *storeRepository) CreateStore(_ context.Context, store *entity.Store) error {
	if store.ID == "" {
		store.ID = uuid.NewString()
	}

	now := r.db.Now()
	store.CreatedAt = &now
	store.UpdatedAt = &now

	r.db.Put(r.collection, store.ID, document.StoreFields(store))

	return nil
}

func (r *storeRepository) UpdateStore(_ context.Context, id string, patch entity.StorePatch) error {
	now := r.db.Now()

	return r.db.Mutate(r.collection, id, func(doc map[string]any, exists bool) (map[string]any, error) {
		if !exists {
			return nil, repository.ErrStoreNotFound
		}
		for _, u := range document.PatchUpdates(patch) {
			if document.IsTimestampField(u.Path) {
				doc[u.Path] = now
			} else {
				doc[u.Path] = u.Value
			}
		}

		return doc, nil
	})
}

func (r *storeRepository) AddProduct(_ context.Context, storeID string, product entity.Product) error {
	now := r.db.Now()

	return r.db.Mutate(r.collection, storeID, func(doc map[string]any, exists bool) (map[string]any, error) {
		if !exists {
			return nil, repository.ErrStoreNotFound
		}
		products, _ := doc[document.FieldProducts].([]any)
		doc[document.FieldProducts] = append(products, document.ProductFields(product))
		doc[document.FieldUpdatedAt] = now

		return doc, nil
	})
}

func (r *storeRepository) RemoveProduct(_ context.Context, storeID, productID string) error {
	now := r.db.Now()

	return r.db.Mutate(r.collection, storeID, func(doc map[string]any, exists bool) (map[string]any, error) {
		if !exists {
			return nil, repository.ErrStoreNotFound
		}
		products, _ := doc[document.FieldProducts].([]any)
		kept := make([]any, 0, len(products))
		for _, p := range products {
			if m, ok := p.(map[string]any); ok && m[document.FieldProductID] == productID {
				continue
			}
			kept = append(kept, p)
		}
		if len(kept) == len(products) {
			return nil, repository.ErrProductNotFound
		}
		doc[document.FieldProducts] = kept
		doc[document.FieldUpdatedAt] = now

		return doc, nil
	})
}

func (r *storeRepository) DeleteStore(_ context.Context, id string) error {
	r.db.Delete(r.collection, id)

	return nil
}

// storeStream replays the open-stores query after every write to the collection.
type storeStream struct {
	repo    *storeRepository
	changes <-chan struct{}
	cancel  func()

	started  bool
	stopOnce sync.Once
	stopped  chan struct{}
}

func (s *storeStream) Next(ctx context.Context) (*repository.StoreSnapshot, error) {
	select {
	case <-s.stopped:
		return nil, repository.ErrStreamStopped
	default:
	}

	if !s.started {
		s.started = true

		return s.repo.snapshot(), nil
	}

	select {
	case <-s.stopped:
		return nil, repository.ErrStreamStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.changes:
		return s.repo.snapshot(), nil
	}
}

func (s *storeStream) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		close(s.stopped)
	})
}
