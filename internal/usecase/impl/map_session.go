package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/navigation"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

const sessionEventBuffer = 64

// Alerts raised by the map session.
var (
	alertSignInRequired = usecase.Alert{Title: "Sign in required", Message: "Please sign in to save favorites."}
	alertFavoriteFailed = usecase.Alert{Title: "Favorite failed"}
	alertIntentFailed   = usecase.Alert{Title: "Could not open link"}
)

// mapSessionFactory implements the MapSessionFactory interface.
type mapSessionFactory struct {
	feed      usecase.StoreFeed
	favorites usecase.FavoriteUsecase
	mapCfg    config.MapConfig
	locCfg    config.LocationConfig
	logger    *slog.Logger
}

// NewMapSessionFactory is the constructor for mapSessionFactory.
func NewMapSessionFactory(
	feed usecase.StoreFeed,
	favorites usecase.FavoriteUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MapSessionFactory {
	return &mapSessionFactory{
		feed:      feed,
		favorites: favorites,
		mapCfg:    *cfg.Map,
		locCfg:    *cfg.Location,
		logger:    logger,
	}
}

// NewSession starts a map session with its own location tracker.
func (f *mapSessionFactory) NewSession(ctx context.Context, params usecase.MapSessionParams) usecase.MapSession {
	logger := f.logger.With("session_id", params.SessionID)
	tracker := NewLocationTracker(params.Geolocation, f.locCfg, logger)

	return newMapSession(ctx, mapSessionDeps{
		feed:      f.feed,
		tracker:   tracker,
		favorites: f.favorites,
		params:    params,
		cfg:       f.mapCfg,
		logger:    logger,
	})
}

type mapSessionDeps struct {
	feed      usecase.StoreFeed
	tracker   usecase.LocationTracker
	favorites usecase.FavoriteUsecase
	params    usecase.MapSessionParams
	cfg       config.MapConfig
	logger    *slog.Logger
}

// mapSession implements the MapSession interface. Every field below the
// channels is owned by the loop goroutine.
type mapSession struct {
	mapSessionDeps

	ctx       context.Context
	cancel    context.CancelFunc
	events    chan func()
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	workers   sync.WaitGroup

	unsubscribe func()

	view         usecase.ViewState
	feedVersion  uint64
	centeredOnce bool
	token        uint64
	search       SearchBox

	mu       sync.RWMutex
	rendered usecase.ViewState
}

func newMapSession(ctx context.Context, deps mapSessionDeps) *mapSession {
	sessionCtx, cancel := context.WithCancel(ctx)
	s := &mapSession{
		mapSessionDeps: deps,
		ctx:            sessionCtx,
		cancel:         cancel,
		events:         make(chan func(), sessionEventBuffer),
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}

	feedState := deps.feed.State()
	s.applyFeed(feedState)
	s.view.LocationLoading = true
	s.search.Clear()
	s.view.Search = s.search.State()

	center := entity.Coordinate{Latitude: deps.cfg.FallbackLatitude, Longitude: deps.cfg.FallbackLongitude}
	if len(feedState.Pins) > 0 {
		center = feedState.Pins[0].Coordinate()
	}
	s.view.Camera = entity.CameraPosition{Center: center, Zoom: deps.cfg.DefaultZoom, Pitch: deps.cfg.Pitch}
	deps.params.Renderer.SetCamera(entity.CameraCommand{Position: s.view.Camera, Reason: entity.CameraReasonInitial})
	s.render()

	s.unsubscribe = deps.feed.Subscribe(func(state usecase.FeedState) {
		s.post(func() { s.onFeed(state) })
	})
	// The feed may have moved between State and Subscribe.
	s.post(func() { s.onFeed(s.feed.State()) })

	deps.tracker.Start(sessionCtx, func(state usecase.LocationState) {
		s.post(func() { s.onLocation(state) })
	})

	go s.loop()

	deps.logger.Debug("Map session started", slog.Int("pins", len(feedState.Pins)))

	return s
}

func (s *mapSession) loop() {
	defer close(s.done)

	for {
		select {
		case <-s.stop:
			return
		case fn := <-s.events:
			fn()
		}
	}
}

// post queues fn for the loop. Events posted after Close are dropped.
func (s *mapSession) post(fn func()) {
	select {
	case <-s.stop:
		return
	default:
	}

	select {
	case s.events <- fn:
	case <-s.done:
	case <-s.stop:
	}
}

// async runs work off the loop; its result is posted back as an event.
func (s *mapSession) async(work func(ctx context.Context) func()) {
	s.workers.Add(1)
	go func() {
		defer s.workers.Done()
		if result := work(s.ctx); result != nil {
			s.post(result)
		}
	}()
}

// Close stops the loop and waits for the tracker and in-flight requests.
func (s *mapSession) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		close(s.stop)
		<-s.done
		s.unsubscribe()
		s.tracker.Close()
		s.workers.Wait()
		s.logger.Debug("Map session closed")
	})
}

func (s *mapSession) Notify(alert usecase.Alert) {
	s.post(func() { s.params.Renderer.Alert(alert) })
}

// State returns the last rendered view state.
func (s *mapSession) State() usecase.ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rendered
}

func (s *mapSession) SelectPin(storeID string) {
	s.post(func() { s.selectPin(storeID) })
}

func (s *mapSession) CloseSheet() {
	s.post(func() {
		s.token++
		s.view.StoreSelected = false
		s.view.Sheet = nil
		s.render()
	})
}

func (s *mapSession) OpenFabMenu() {
	s.post(func() {
		s.view.FabMenuOpen = true
		s.render()
	})
}

func (s *mapSession) CloseFabMenu() {
	s.post(func() {
		s.view.FabMenuOpen = false
		s.render()
	})
}

func (s *mapSession) Recenter() {
	s.post(func() {
		if s.view.Location == nil {
			s.view.RecenterPending = true
			s.render()

			return
		}
		s.moveCamera(*s.view.Location, s.cfg.DefaultZoom, entity.CameraReasonRecenter)
		s.render()
	})
}

func (s *mapSession) TypeQuery(query string) {
	s.post(func() {
		s.search.Type(query, s.view.Pins)
		s.view.Search = s.search.State()
		s.render()
	})
}

func (s *mapSession) SelectSuggestion(storeID string) {
	s.post(func() {
		pin, ok := s.search.Suggestion(storeID)
		if !ok {
			s.logger.Debug("Ignoring unknown suggestion", "storeID", storeID)

			return
		}
		s.search.Select(pin)
		s.view.Search = s.search.State()
		s.moveCamera(pin.Coordinate(), s.cfg.SearchZoom, entity.CameraReasonSearchHit)
		s.render()
	})
}

func (s *mapSession) ClearSearch() {
	s.post(func() {
		s.search.Clear()
		s.view.Search = s.search.State()
		s.render()
	})
}

func (s *mapSession) ToggleFavorite() {
	s.post(s.toggleFavorite)
}

func (s *mapSession) OpenDirections() {
	s.post(func() {
		if s.view.Sheet == nil || s.view.Sheet.Store.Position == nil {
			return
		}
		store := s.view.Sheet.Store
		coord, label := *store.Position, store.ShopName
		s.async(func(ctx context.Context) func() {
			opened, err := navigation.OpenDirections(ctx, s.params.Launcher, coord, label)
			if err != nil {
				return s.intentFailed(err)
			}
			s.logger.Debug("Directions opened", "url", opened)

			return nil
		})
	})
}

func (s *mapSession) DialOwner() {
	s.post(func() {
		if s.view.Sheet == nil {
			return
		}
		phone := s.view.Sheet.Store.OwnerPhone
		s.async(func(ctx context.Context) func() {
			opened, err := navigation.Dial(ctx, s.params.Launcher, phone)
			if err != nil {
				return s.intentFailed(err)
			}
			if !opened {
				s.logger.Debug("Dial skipped", "phone", phone)
			}

			return nil
		})
	})
}

func (s *mapSession) intentFailed(err error) func() {
	if s.ctx.Err() != nil {
		return nil
	}
	s.logger.Warn("Intent failed", slog.Any("error", err))

	return func() {
		alert := alertIntentFailed
		alert.Message = err.Error()
		s.params.Renderer.Alert(alert)
	}
}

func (s *mapSession) selectPin(storeID string) {
	var selected *entity.Store
	for _, pin := range s.view.Pins {
		if pin.ID == storeID {
			selected = pin.Store
			break
		}
	}
	if selected == nil {
		s.logger.Debug("Ignoring unknown pin", "storeID", storeID)

		return
	}

	s.token++
	token := s.token
	s.view.StoreSelected = true
	s.view.Sheet = &usecase.Sheet{
		Store:    selected,
		Favorite: usecase.FavoriteFlag{Status: usecase.FavoritePending},
	}
	s.render()

	s.async(func(ctx context.Context) func() {
		favorited, err := s.favorites.CheckFavorite(ctx, storeID)

		return func() {
			if !s.current(token, storeID) {
				return
			}
			if err != nil {
				s.view.Sheet.Favorite = usecase.FavoriteFlag{Status: usecase.FavoriteUnknown, Err: err.Error()}
			} else {
				s.view.Sheet.Favorite = usecase.FavoriteFlag{Status: usecase.FavoriteConfirmed, Value: favorited}
			}
			s.render()
		}
	})
}

func (s *mapSession) toggleFavorite() {
	sheet := s.view.Sheet
	if sheet == nil || sheet.Favorite.Status == usecase.FavoritePending {
		return
	}

	previous := sheet.Favorite.Value
	store := sheet.Store
	token := s.token
	sheet.Favorite = usecase.FavoriteFlag{Status: usecase.FavoritePending, Value: previous}
	s.render()

	s.async(func(ctx context.Context) func() {
		favorited, err := s.favorites.ToggleFavorite(ctx, store)

		return func() {
			if !s.current(token, store.ID) {
				return
			}
			if err != nil {
				s.view.Sheet.Favorite = usecase.FavoriteFlag{Status: usecase.FavoriteRolledBack, Value: previous, Err: err.Error()}
				s.params.Renderer.Alert(favoriteAlert(err))
			} else {
				s.view.Sheet.Favorite = usecase.FavoriteFlag{Status: usecase.FavoriteConfirmed, Value: favorited}
			}
			s.render()
		}
	})
}

func favoriteAlert(err error) usecase.Alert {
	if errors.Is(err, domainerrors.ErrSignInRequired) {
		return alertSignInRequired
	}
	alert := alertFavoriteFailed
	alert.Message = err.Error()

	return alert
}

// current reports whether a result for (token, storeID) still matches the open sheet.
func (s *mapSession) current(token uint64, storeID string) bool {
	return s.token == token && s.view.Sheet != nil && s.view.Sheet.Store.ID == storeID
}

func (s *mapSession) onFeed(state usecase.FeedState) {
	if state.Version <= s.feedVersion {
		return
	}
	s.applyFeed(state)
	s.search.Refresh(s.view.Pins)
	s.view.Search = s.search.State()
	s.render()
}

func (s *mapSession) applyFeed(state usecase.FeedState) {
	s.feedVersion = state.Version
	s.view.Pins = state.Pins
	s.view.FeedLoading = state.Loading
	s.view.FeedErr = state.Err
}

func (s *mapSession) onLocation(state usecase.LocationState) {
	s.view.Location = state.Location
	s.view.LocationLoading = state.Loading
	s.view.LocationErr = state.Err

	if state.Location != nil {
		s.view.Radius = &usecase.RadiusOverlay{
			Center: *state.Location,
			Meters: s.cfg.RadiusMeters,
			Steps:  s.cfg.RadiusSteps,
		}
		s.view.RecenterPending = false
		if !s.centeredOnce {
			s.centeredOnce = true
			s.moveCamera(*state.Location, s.cfg.DefaultZoom, entity.CameraReasonFirstFix)
		}
	}
	s.render()
}

func (s *mapSession) moveCamera(center entity.Coordinate, zoom float64, reason entity.CameraReason) {
	s.view.Camera = entity.CameraPosition{Center: center, Zoom: zoom, Pitch: s.cfg.Pitch}
	s.params.Renderer.SetCamera(entity.CameraCommand{
		Position: s.view.Camera,
		Animated: true,
		Duration: s.cfg.AnimationDuration,
		Reason:   reason,
	})
}

func (s *mapSession) render() {
	view := s.view
	if view.Sheet != nil {
		sheet := *view.Sheet
		view.Sheet = &sheet
	}

	s.mu.Lock()
	s.rendered = view
	s.mu.Unlock()

	s.params.Renderer.Render(view)
}
