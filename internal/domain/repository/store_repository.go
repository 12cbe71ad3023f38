// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store document does not exist.
	ErrStoreNotFound = errors.New("store not found")
	// ErrProductNotFound is returned when a product id is not part of the store catalogue.
	ErrProductNotFound = errors.New("product not found")
	// ErrStreamStopped is returned by StoreStream.Next after Stop was called.
	ErrStreamStopped = errors.New("store stream stopped")
)

// StoreSnapshot is the full result set of the open-stores query at one point in time.
type StoreSnapshot struct {
	Stores    []*entity.Store
	Malformed []error // Documents matched by the query that failed to parse.
	ReadTime  time.Time
}

// StoreStream delivers a snapshot every time the open-stores result set changes.
type StoreStream interface {
	// Next blocks until the next snapshot is available. The first call returns the
	// current result set. It returns ErrStreamStopped once Stop has been called.
	Next(ctx context.Context) (*StoreSnapshot, error)

	// Stop releases the subscription. It is safe to call more than once.
	Stop()
}

// StoreRepository defines the interface for store document operations.
type StoreRepository interface {
	// WatchOpenStores subscribes to stores whose open flag is true.
	WatchOpenStores(ctx context.Context) (StoreStream, error)

	// FindOpenStores performs a one-shot read with the same filter as WatchOpenStores.
	FindOpenStores(ctx context.Context) (*StoreSnapshot, error)

	// FindStoreByID retrieves a store by its document id.
	FindStoreByID(ctx context.Context, id string) (*entity.Store, error)

	// FindStoresByOwner retrieves every store registered by an owner.
	FindStoresByOwner(ctx context.Context, ownerID string) ([]*entity.Store, error)

	// CreateStore writes a whole new store document and assigns its id when empty.
	CreateStore(ctx context.Context, store *entity.Store) error

	// UpdateStore applies a partial update. Fields absent from the patch are not touched.
	UpdateStore(ctx context.Context, id string, patch entity.StorePatch) error

	// AddProduct appends a product to the catalogue.
	AddProduct(ctx context.Context, storeID string, product entity.Product) error

	// RemoveProduct removes a product by id inside a read-modify-write transaction.
	RemoveProduct(ctx context.Context, storeID, productID string) error

	// DeleteStore removes a store document.
	DeleteStore(ctx context.Context, id string) error
}
