// Package geolocation implements service.Geolocation for positions reported by
// a connected device. The device owns the sensor and its permission dialog; this
// side applies the request timeouts and watch filters.
package geolocation

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/geo"

	"github.com/pkg/errors"
)

// ErrTimeout is returned when no fix arrives within the request timeout.
var ErrTimeout = errors.New("Location request timed out")

const (
	positionBuffer = 8
	errorBuffer    = 4
)

type fixResult struct {
	coord entity.Coordinate
	err   error
}

type fix struct {
	coord entity.Coordinate
	at    time.Time
}

// Reported is a device-fed location platform.
//
// Devices report as soon as they can, often before the matching request is
// made. Fixes are numbered: a fix reported after the permission answer and not
// yet handed out satisfies the next CurrentPosition, and fixes reported since
// then seed the next Watch.
type Reported struct {
	mu          sync.Mutex
	now         func() time.Time
	permission  *service.PermissionResult
	permWaiters []chan service.PermissionResult
	fixWaiters  []chan fixResult
	last        *entity.Coordinate
	lastAt      time.Time
	seq         uint64
	permSeq     uint64
	consumedSeq uint64
	backlog     []fix
	watches     map[*watch]struct{}
}

// NewReported creates an empty platform awaiting device reports.
func NewReported() *Reported {
	return &Reported{
		now:     time.Now,
		watches: make(map[*watch]struct{}),
	}
}

// ReportPermission records the outcome of the device permission dialog.
func (r *Reported) ReportPermission(result service.PermissionResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.permission = &result
	r.permSeq = r.seq
	r.backlog = nil
	for _, ch := range r.permWaiters {
		ch <- result
	}
	r.permWaiters = nil
}

// ReportPosition records a fix and fans it out to pending reads and watches.
func (r *Reported) ReportPosition(coord entity.Coordinate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.seq++
	r.last = &coord
	r.lastAt = now

	if len(r.fixWaiters) > 0 {
		for _, ch := range r.fixWaiters {
			ch <- fixResult{coord: coord}
		}
		r.fixWaiters = nil
		r.consume()
	} else {
		r.backlog = append(r.backlog, fix{coord: coord, at: now})
		if len(r.backlog) > positionBuffer {
			r.backlog = r.backlog[len(r.backlog)-positionBuffer:]
		}
	}

	for w := range r.watches {
		w.offer(coord, now)
	}
}

// ReportError records a sensor failure.
func (r *Reported) ReportError(message string) {
	err := errors.New(message)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ch := range r.fixWaiters {
		ch <- fixResult{err: err}
	}
	r.fixWaiters = nil

	for w := range r.watches {
		w.fail(err)
	}
}

// RequestPermission waits for the device to report its permission state.
func (r *Reported) RequestPermission(ctx context.Context) (service.PermissionResult, error) {
	r.mu.Lock()
	if r.permission != nil {
		result := *r.permission
		r.mu.Unlock()

		return result, nil
	}
	ch := make(chan service.PermissionResult, 1)
	r.permWaiters = append(r.permWaiters, ch)
	r.mu.Unlock()

	select {
	case result := <-ch:
		return result, nil
	case <-ctx.Done():
		return service.PermissionResult{}, errors.WithStack(ctx.Err())
	}
}

// consume marks the latest fix as handed out. Callers hold r.mu.
func (r *Reported) consume() {
	r.consumedSeq = r.seq
	r.backlog = nil
}

// CurrentPosition returns the first of: an unconsumed fix reported since the
// permission answer, a cached fix younger than MaxAge, or the next reported fix.
func (r *Reported) CurrentPosition(ctx context.Context, req service.PositionRequest) (entity.Coordinate, error) {
	r.mu.Lock()
	if r.last != nil && r.seq > r.consumedSeq && r.seq > r.permSeq {
		coord := *r.last
		r.consume()
		r.mu.Unlock()

		return coord, nil
	}
	if r.last != nil && req.MaxAge > 0 && r.now().Sub(r.lastAt) <= req.MaxAge {
		coord := *r.last
		r.mu.Unlock()

		return coord, nil
	}
	ch := make(chan fixResult, 1)
	r.fixWaiters = append(r.fixWaiters, ch)
	r.mu.Unlock()

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	select {
	case res := <-ch:
		return res.coord, res.err
	case <-ctx.Done():
		r.dropFixWaiter(ch)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return entity.Coordinate{}, ErrTimeout
		}

		return entity.Coordinate{}, errors.WithStack(ctx.Err())
	}
}

func (r *Reported) dropFixWaiter(target chan fixResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, ch := range r.fixWaiters {
		if ch == target {
			r.fixWaiters = append(r.fixWaiters[:i], r.fixWaiters[i+1:]...)

			return
		}
	}
}

// Watch streams reported fixes that pass the distance and rate filters.
func (r *Reported) Watch(ctx context.Context, opts service.WatchOptions) (service.PositionWatch, error) {
	w := &watch{
		owner:     r,
		opts:      opts,
		positions: make(chan entity.Coordinate, positionBuffer),
		errs:      make(chan error, errorBuffer),
		done:      make(chan struct{}),
	}

	r.mu.Lock()
	r.watches[w] = struct{}{}
	for _, f := range r.backlog {
		w.offer(f.coord, f.at)
	}
	r.consume()
	r.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			w.Cancel()
		case <-w.done:
		}
	}()

	return w, nil
}

func (r *Reported) removeWatch(w *watch) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.watches, w)
}

type watch struct {
	owner *Reported
	opts  service.WatchOptions

	mu        sync.Mutex
	closed    bool
	last      *entity.Coordinate
	lastAt    time.Time
	positions chan entity.Coordinate
	errs      chan error
	done      chan struct{}
}

func (w *watch) Positions() <-chan entity.Coordinate { return w.positions }

func (w *watch) Errors() <-chan error { return w.errs }

func (w *watch) Cancel() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()

		return
	}
	w.closed = true
	close(w.done)
	close(w.positions)
	close(w.errs)
	w.mu.Unlock()

	w.owner.removeWatch(w)
}

// offer applies the minimum-distance and fastest-interval gates.
func (w *watch) offer(coord entity.Coordinate, at time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.last != nil {
		if w.opts.FastestInterval > 0 && at.Sub(w.lastAt) < w.opts.FastestInterval {
			return
		}
		if w.opts.DistanceFilterMeters > 0 && geo.Distance(*w.last, coord) < w.opts.DistanceFilterMeters {
			return
		}
	}
	w.last = &coord
	w.lastAt = at

	// Keep the newest fix when the consumer lags.
	select {
	case w.positions <- coord:
	default:
		select {
		case <-w.positions:
		default:
		}
		w.positions <- coord
	}
}

func (w *watch) fail(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	select {
	case w.errs <- err:
	default:
	}
}
