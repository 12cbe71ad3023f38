package navigation

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLauncher struct {
	schemes []string
	failing map[string]bool
	opened  []string
}

func (f *fakeLauncher) CanOpen(_ context.Context, target string) bool {
	for _, s := range f.schemes {
		if strings.HasPrefix(target, s) {
			return true
		}
	}

	return false
}

func (f *fakeLauncher) Open(_ context.Context, target string) error {
	if f.failing[target] {
		return errors.New("launch failed")
	}
	f.opened = append(f.opened, target)

	return nil
}

var vandi = entity.Coordinate{Latitude: 10.8, Longitude: 78.6}

func TestDirectionsFor(t *testing.T) {
	links := DirectionsFor(vandi, "Apple Vandi")

	assert.Equal(t, "comgooglemaps://?q=10.8,78.6(Apple%20Vandi)", links.NativeURL)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=10.8,78.6", links.WebURL)
	assert.Contains(t, DirectionsFor(vandi, "").NativeURL, "(Location)")
}

func TestDirectionsFor_LabelIsOneQueryValue(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{label: "Tea & Snacks+Co", want: "comgooglemaps://?q=10.8,78.6(Tea%20%26%20Snacks%2BCo)"},
		{label: "a=b?c#d", want: "comgooglemaps://?q=10.8,78.6(a%3Db%3Fc%23d)"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			native := DirectionsFor(vandi, tt.label).NativeURL
			assert.Equal(t, tt.want, native)

			parsed, err := url.Parse(native)
			require.NoError(t, err)
			assert.Equal(t, "10.8,78.6("+tt.label+")", parsed.Query().Get("q"))
		})
	}
}

func TestOpenDirections(t *testing.T) {
	ctx := context.Background()

	t.Run("native app installed", func(t *testing.T) {
		launcher := &fakeLauncher{schemes: []string{"comgooglemaps:", "https:"}}

		opened, err := OpenDirections(ctx, launcher, vandi, "Apple Vandi")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(opened, "comgooglemaps://"))
	})

	t.Run("falls back to web", func(t *testing.T) {
		launcher := &fakeLauncher{schemes: []string{"https:"}}

		opened, err := OpenDirections(ctx, launcher, vandi, "Apple Vandi")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(opened, "https://www.google.com/maps"))
	})

	t.Run("native launch failure falls back", func(t *testing.T) {
		links := DirectionsFor(vandi, "Apple Vandi")
		launcher := &fakeLauncher{schemes: []string{"comgooglemaps:"}, failing: map[string]bool{links.NativeURL: true}}

		opened, err := OpenDirections(ctx, launcher, vandi, "Apple Vandi")
		require.NoError(t, err)
		assert.Equal(t, links.WebURL, opened)
	})
}

func TestDial(t *testing.T) {
	ctx := context.Background()

	launcher := &fakeLauncher{schemes: []string{"tel:"}}
	opened, err := Dial(ctx, launcher, "+91 98765 43210")
	require.NoError(t, err)
	assert.True(t, opened)
	assert.Equal(t, []string{"tel:+919876543210"}, launcher.opened)

	opened, err = Dial(ctx, launcher, "  ")
	require.NoError(t, err)
	assert.False(t, opened)

	noDialer := &fakeLauncher{}
	opened, err = Dial(ctx, noDialer, "+91000")
	require.NoError(t, err)
	assert.False(t, opened)
	assert.Empty(t, noDialer.opened)
}
