// Package usecase defines the application use cases and the data they exchange with delivery.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// FeedState is an immutable view of the open-store feed.
type FeedState struct {
	Pins      []entity.Pin `json:"pins"`
	Loading   bool         `json:"loading"`
	Err       string       `json:"error,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
	// Version increases with every published state so consumers can drop stale copies.
	Version uint64 `json:"version"`
}

// StoreFeed keeps a live, locally materialized list of open stores.
type StoreFeed interface {
	// Start subscribes to the store collection. Calling it again is a no-op.
	Start(ctx context.Context) error

	// Close tears the subscription down. It is idempotent and safe before Start.
	Close()

	// State returns the current feed state.
	State() FeedState

	// Subscribe registers an observer for every published state.
	Subscribe(fn func(FeedState)) (cancel func())

	// Store looks up an open store by id among the current pins.
	Store(id string) (*entity.Store, bool)

	// Search filters the current pins by shop or owner name. An empty query matches nothing.
	Search(query string) []entity.Pin
}
