// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// storeFeed implements the StoreFeed interface.
type storeFeed struct {
	storeRepo repository.StoreRepository
	logger    *slog.Logger

	mu        sync.RWMutex
	state     usecase.FeedState
	observers map[uint64]func(usecase.FeedState)
	nextID    uint64
	started   bool
	closed    bool

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// NewStoreFeed is the constructor for storeFeed.
func NewStoreFeed(storeRepo repository.StoreRepository, logger *slog.Logger) usecase.StoreFeed {
	return &storeFeed{
		storeRepo: storeRepo,
		logger:    logger.With("component", "store_feed"),
		state:     usecase.FeedState{Pins: []entity.Pin{}, Loading: true},
		observers: make(map[uint64]func(usecase.FeedState)),
	}
}

// Start subscribes to open stores in a background goroutine.
func (srv *storeFeed) Start(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.started || srv.closed {
		return nil
	}
	srv.started = true

	runCtx, cancel := context.WithCancel(ctx)
	srv.cancel = cancel
	srv.done = make(chan struct{})

	go srv.run(runCtx)

	return nil
}

// Close cancels the subscription and waits for the listener to exit.
func (srv *storeFeed) Close() {
	srv.closeOnce.Do(func() {
		srv.mu.Lock()
		srv.closed = true
		cancel, done := srv.cancel, srv.done
		srv.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		if done != nil {
			<-done
		}
		srv.logger.Debug("Store feed closed")
	})
}

// State returns the current feed state.
func (srv *storeFeed) State() usecase.FeedState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.state
}

// Subscribe registers fn for every state published after the call.
func (srv *storeFeed) Subscribe(fn func(usecase.FeedState)) func() {
	srv.mu.Lock()
	id := srv.nextID
	srv.nextID++
	srv.observers[id] = fn
	srv.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			srv.mu.Lock()
			delete(srv.observers, id)
			srv.mu.Unlock()
		})
	}
}

// Store finds an open store among the current pins.
func (srv *storeFeed) Store(id string) (*entity.Store, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	for _, pin := range srv.state.Pins {
		if pin.ID == id {
			return pin.Store, true
		}
	}

	return nil, false
}

func (srv *storeFeed) Search(query string) []entity.Pin {
	return SearchPins(query, srv.State().Pins)
}

func (srv *storeFeed) run(ctx context.Context) {
	defer close(srv.done)

	stream, err := srv.storeRepo.WatchOpenStores(ctx)
	if err != nil {
		if ctx.Err() == nil {
			srv.fallback(ctx, err)
		}

		return
	}
	defer stream.Stop()

	for {
		snapshot, err := stream.Next(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, repository.ErrStreamStopped) {
				return
			}
			srv.fallback(ctx, err)

			return
		}
		srv.apply(snapshot, "")
	}
}

// fallback performs the single one-shot read after the live subscription failed.
func (srv *storeFeed) fallback(ctx context.Context, cause error) {
	srv.logger.Warn("Store subscription failed, falling back to one-shot read", slog.Any("error", cause))
	banner := "Live updates unavailable: " + cause.Error()

	snapshot, err := srv.storeRepo.FindOpenStores(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		srv.logger.Error("Fallback store read failed", slog.Any("error", err))
		srv.publish(func(state *usecase.FeedState) {
			state.Loading = false
			state.Err = banner
		})

		return
	}

	srv.apply(snapshot, banner)
}

// apply rebuilds every pin from the snapshot and swaps the list in one step.
func (srv *storeFeed) apply(snapshot *repository.StoreSnapshot, banner string) {
	for _, malformed := range snapshot.Malformed {
		srv.logger.Warn("Skipping malformed store document", slog.Any("error", malformed))
	}

	pins := make([]entity.Pin, 0, len(snapshot.Stores))
	for _, store := range snapshot.Stores {
		if pin, ok := entity.NewPin(store); ok {
			pins = append(pins, pin)
		}
	}

	srv.logger.Debug("Store feed updated", slog.Int("pins", len(pins)))
	srv.publish(func(state *usecase.FeedState) {
		state.Pins = pins
		state.Loading = false
		state.Err = banner
		state.UpdatedAt = snapshot.ReadTime
	})
}

func (srv *storeFeed) publish(mutate func(state *usecase.FeedState)) {
	srv.mu.Lock()
	if srv.closed {
		srv.mu.Unlock()

		return
	}
	mutate(&srv.state)
	srv.state.Version++
	state := srv.state
	observers := make([]func(usecase.FeedState), 0, len(srv.observers))
	for _, fn := range srv.observers {
		observers = append(observers, fn)
	}
	srv.mu.Unlock()

	for _, fn := range observers {
		fn(state)
	}
}
