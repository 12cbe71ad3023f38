package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// locationTracker implements the LocationTracker interface.
type locationTracker struct {
	geo    service.Geolocation
	cfg    config.LocationConfig
	logger *slog.Logger

	mu       sync.Mutex
	state    usecase.LocationState
	onChange func(usecase.LocationState)
	started  bool
	closed   bool

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// NewLocationTracker is the constructor for locationTracker.
func NewLocationTracker(geo service.Geolocation, cfg config.LocationConfig, logger *slog.Logger) usecase.LocationTracker {
	return &locationTracker{
		geo:    geo,
		cfg:    cfg,
		logger: logger,
		state:  usecase.LocationState{Loading: true},
	}
}

// Start requests permission, takes a first fix and then watches the position.
func (srv *locationTracker) Start(ctx context.Context, onChange func(usecase.LocationState)) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.started || srv.closed {
		return
	}
	srv.started = true
	srv.onChange = onChange

	runCtx, cancel := context.WithCancel(ctx)
	srv.cancel = cancel
	srv.done = make(chan struct{})

	go srv.run(runCtx)
}

// State returns the latest location state.
func (srv *locationTracker) State() usecase.LocationState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state
}

// Close cancels the watch and waits for the tracker goroutine.
func (srv *locationTracker) Close() {
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
	})
}

func (srv *locationTracker) run(ctx context.Context) {
	defer close(srv.done)

	permission, err := srv.geo.RequestPermission(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		srv.fail(err.Error())

		return
	}
	if !permission.IsGranted() {
		srv.logger.Info("Location permission denied", "reason", permission.Reason)
		srv.fail(permission.Reason)

		return
	}

	coord, err := srv.geo.CurrentPosition(ctx, service.PositionRequest{
		Timeout:      srv.cfg.FirstFixTimeout,
		HighAccuracy: srv.cfg.HighAccuracy,
	})
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		srv.logger.Debug("First location fix failed", slog.Any("error", err))
		srv.fail(err.Error())
	} else {
		srv.locate(coord)
	}

	watch, err := srv.geo.Watch(ctx, service.WatchOptions{
		HighAccuracy:         srv.cfg.HighAccuracy,
		DistanceFilterMeters: srv.cfg.DistanceFilterMeters,
		Interval:             srv.cfg.Interval,
		FastestInterval:      srv.cfg.FastestInterval,
	})
	if err != nil {
		if ctx.Err() == nil {
			srv.fail(err.Error())
		}

		return
	}
	defer watch.Cancel()

	positions, errs := watch.Positions(), watch.Errors()
	for {
		select {
		case <-ctx.Done():
			return
		case coord, ok := <-positions:
			if !ok {
				return
			}
			srv.locate(coord)
		case err, ok := <-errs:
			if !ok {
				return
			}
			srv.fail(err.Error())
		}
	}
}

func (srv *locationTracker) locate(coord entity.Coordinate) {
	srv.update(func(state *usecase.LocationState) {
		state.Location = &coord
		state.Loading = false
		state.Err = ""
	})
}

// fail records an error and keeps the last known location.
func (srv *locationTracker) fail(message string) {
	srv.update(func(state *usecase.LocationState) {
		state.Loading = false
		state.Err = message
	})
}

func (srv *locationTracker) update(mutate func(state *usecase.LocationState)) {
	srv.mu.Lock()
	if srv.closed {
		srv.mu.Unlock()

		return
	}
	mutate(&srv.state)
	state, onChange := srv.state, srv.onChange
	srv.mu.Unlock()

	if onChange != nil {
		onChange(state)
	}
}
