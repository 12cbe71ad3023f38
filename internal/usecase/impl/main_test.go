package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Started at init by the opencensus instrumentation of the Firebase clients.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Map: &config.MapConfig{
			FallbackLatitude:  config.DefaultFallbackLatitude,
			FallbackLongitude: config.DefaultFallbackLongitude,
			DefaultZoom:       13,
			SearchZoom:        16,
			Pitch:             30,
			AnimationDuration: 800 * time.Millisecond,
			RadiusMeters:      3000,
			RadiusSteps:       128,
		},
		Location: &config.LocationConfig{
			FirstFixTimeout: time.Second,
			HighAccuracy:    true,
		},
	}
}

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)
