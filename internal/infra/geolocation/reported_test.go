package geolocation

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var here = entity.Coordinate{Latitude: 10.80, Longitude: 78.60}

func TestReported_RequestPermission(t *testing.T) {
	r := NewReported()

	go r.ReportPermission(service.Denied("blocked in settings"))

	result, err := r.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.False(t, result.IsGranted())
	assert.Equal(t, "blocked in settings", result.Reason)

	// Later requests return the recorded answer without waiting.
	again, err := r.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestReported_CurrentPosition(t *testing.T) {
	r := NewReported()

	go r.ReportPosition(here)

	coord, err := r.CurrentPosition(context.Background(), service.PositionRequest{Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, here, coord)
}

func TestReported_CurrentPosition_Timeout(t *testing.T) {
	r := NewReported()

	_, err := r.CurrentPosition(context.Background(), service.PositionRequest{Timeout: 20 * time.Millisecond})
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Empty(t, r.fixWaiters)
}

func TestReported_CurrentPosition_MaxAge(t *testing.T) {
	r := NewReported()
	r.ReportPosition(here)

	coord, err := r.CurrentPosition(context.Background(), service.PositionRequest{MaxAge: time.Minute, Timeout: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, here, coord)
}

func TestReported_CurrentPosition_FixBeforeRequest(t *testing.T) {
	tests := []struct {
		name   string
		report func(r *Reported)
		want   bool
	}{
		{
			name: "fix right after the grant",
			report: func(r *Reported) {
				r.ReportPermission(service.Granted())
				r.ReportPosition(here)
			},
			want: true,
		},
		{
			name: "fix from before the grant",
			report: func(r *Reported) {
				r.ReportPosition(here)
				r.ReportPermission(service.Granted())
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReported()
			tt.report(r)

			coord, err := r.CurrentPosition(context.Background(), service.PositionRequest{Timeout: 20 * time.Millisecond})
			if !tt.want {
				assert.ErrorIs(t, err, ErrTimeout)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, here, coord)
		})
	}
}

func TestReported_CurrentPosition_FixHandedOutOnce(t *testing.T) {
	r := NewReported()
	r.ReportPermission(service.Granted())
	r.ReportPosition(here)

	_, err := r.CurrentPosition(context.Background(), service.PositionRequest{Timeout: 20 * time.Millisecond})
	require.NoError(t, err)

	_, err = r.CurrentPosition(context.Background(), service.PositionRequest{Timeout: 20 * time.Millisecond})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestReported_Watch_SeededWithLaterFixes(t *testing.T) {
	r := NewReported()
	r.ReportPermission(service.Granted())
	r.ReportPosition(here)

	_, err := r.CurrentPosition(context.Background(), service.PositionRequest{Timeout: time.Second})
	require.NoError(t, err)

	// Reported before the watch exists.
	moved := entity.Coordinate{Latitude: 10.81, Longitude: 78.61}
	r.ReportPosition(moved)

	w, err := r.Watch(context.Background(), service.WatchOptions{})
	require.NoError(t, err)
	defer w.Cancel()

	select {
	case coord := <-w.Positions():
		assert.Equal(t, moved, coord)
	case <-time.After(time.Second):
		t.Fatal("watch not seeded with the pending fix")
	}

	// The seed is consumed by the first watch.
	w2, err := r.Watch(context.Background(), service.WatchOptions{})
	require.NoError(t, err)
	defer w2.Cancel()
	select {
	case extra := <-w2.Positions():
		t.Fatalf("unexpected position %v", extra)
	default:
	}
}

func TestReported_CurrentPosition_SensorError(t *testing.T) {
	r := NewReported()

	go r.ReportError("GPS unavailable")

	_, err := r.CurrentPosition(context.Background(), service.PositionRequest{Timeout: time.Second})
	assert.EqualError(t, err, "GPS unavailable")
}

func TestReported_Watch_Filters(t *testing.T) {
	r := NewReported()
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	w, err := r.Watch(context.Background(), service.WatchOptions{
		DistanceFilterMeters: 5,
		FastestInterval:      2 * time.Second,
	})
	require.NoError(t, err)
	defer w.Cancel()

	r.ReportPosition(here)
	assert.Equal(t, here, <-w.Positions())

	// Too soon.
	clock = clock.Add(time.Second)
	r.ReportPosition(entity.Coordinate{Latitude: 10.81, Longitude: 78.60})

	// Too close.
	clock = clock.Add(3 * time.Second)
	r.ReportPosition(entity.Coordinate{Latitude: 10.80001, Longitude: 78.60})

	// Passes both gates.
	clock = clock.Add(3 * time.Second)
	far := entity.Coordinate{Latitude: 10.82, Longitude: 78.60}
	r.ReportPosition(far)

	assert.Equal(t, far, <-w.Positions())
	select {
	case extra := <-w.Positions():
		t.Fatalf("unexpected position %v", extra)
	default:
	}
}

func TestReported_Watch_CancelIdempotent(t *testing.T) {
	r := NewReported()

	w, err := r.Watch(context.Background(), service.WatchOptions{})
	require.NoError(t, err)

	w.Cancel()
	w.Cancel()

	_, open := <-w.Positions()
	assert.False(t, open)
	assert.Empty(t, r.watches)

	// Reports after cancel are dropped.
	r.ReportPosition(here)
	r.ReportError("late")
}

func TestReported_Watch_ContextCancel(t *testing.T) {
	r := NewReported()
	ctx, cancel := context.WithCancel(context.Background())

	w, err := r.Watch(ctx, service.WatchOptions{})
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-w.Errors():
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("watch not cancelled with its context")
	}
}
