package session

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderAddsRadiusGeoJSON(t *testing.T) {
	conn, client := newConnPair(t, testSessionConfig())
	renderer := NewRenderer(conn, newDiscardLogger())

	center := entity.Coordinate{Latitude: 10.8, Longitude: 78.69}
	renderer.Render(usecase.ViewState{
		Location: &center,
		Radius:   &usecase.RadiusOverlay{Center: center, Meters: 3000, Steps: 16},
	})
	renderer.Render(usecase.ViewState{LocationLoading: true})

	withRadius := readFrame(t, client)
	assert.Equal(t, FrameState, withRadius.Type)
	require.NotNil(t, withRadius.State)
	require.NotNil(t, withRadius.Radius)
	assert.Equal(t, "Polygon", withRadius.Radius.Geometry.GeoJSONType())

	withoutRadius := readFrame(t, client)
	require.NotNil(t, withoutRadius.State)
	assert.True(t, withoutRadius.State.LocationLoading)
	assert.Nil(t, withoutRadius.Radius)
}

func TestRenderer_SetCamera(t *testing.T) {
	conn, client := newConnPair(t, testSessionConfig())
	renderer := NewRenderer(conn, newDiscardLogger())

	renderer.SetCamera(entity.CameraCommand{
		Position: entity.CameraPosition{Center: entity.Coordinate{Latitude: 10.8, Longitude: 78.69}, Zoom: 16, Pitch: 30},
		Animated: true,
		Duration: 800 * time.Millisecond,
		Reason:   entity.CameraReasonSearchHit,
	})

	frame := readFrame(t, client)
	assert.Equal(t, FrameCamera, frame.Type)
	require.NotNil(t, frame.Camera)
	assert.Equal(t, int64(800), frame.Camera.DurationMS)
	assert.Equal(t, 16.0, frame.Camera.Position.Zoom)
	assert.Equal(t, entity.CameraReasonSearchHit, frame.Camera.Reason)
}
