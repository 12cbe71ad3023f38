package session

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	permissions []service.PermissionResult
	positions   []entity.Coordinate
	errors      []string
}

func (r *recordingReporter) ReportPermission(result service.PermissionResult) {
	r.permissions = append(r.permissions, result)
}

func (r *recordingReporter) ReportPosition(coord entity.Coordinate) {
	r.positions = append(r.positions, coord)
}

func (r *recordingReporter) ReportError(message string) {
	r.errors = append(r.errors, message)
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *mockUC.MockMapSession, *recordingReporter) {
	mapSession := mockUC.NewMockMapSession(t)
	reporter := &recordingReporter{}

	return &Dispatcher{Session: mapSession, Location: reporter, Launcher: NewLauncher(nil)}, mapSession, reporter
}

func coordPtr(v float64) *float64 { return &v }

func TestDispatcher_SessionActions(t *testing.T) {
	tests := []struct {
		msg    ClientMessage
		expect func(m *mockUC.MockMapSession)
	}{
		{msg: ClientMessage{Type: MsgSelectPin, StoreID: "s1"}, expect: func(m *mockUC.MockMapSession) { m.EXPECT().SelectPin("s1").Once() }},
		{msg: ClientMessage{Type: MsgCloseSheet}, expect: func(m *mockUC.MockMapSession) { m.EXPECT().CloseSheet().Once() }},
		{msg: ClientMessage{Type: MsgOpenFab}, expect: func(m *mockUC.MockMapSession) { m.EXPECT().OpenFabMenu().Once() }},
		{msg: ClientMessage{Type: MsgCloseFab}, expect: func(m *mockUC.MockMapSession) { m.EXPECT().CloseFabMenu().Once() }},
		{msg: ClientMessage{Type: MsgRecenter}, expect: func(m *mockUC.MockMapSession) { m.EXPECT().Recenter().Once() }},
		{msg: ClientMessage{Type: MsgQuery, Query: "ma"}, expect: func(m *mockUC.MockMapSession) { m.EXPECT().TypeQuery("ma").Once() }},
		{msg: ClientMessage{Type: MsgQuery}, expect: func(m *mockUC.MockMapSession) { m.EXPECT().TypeQuery("").Once() }},
		{msg: ClientMessage{Type: MsgSelectSuggestion, StoreID: "s2"}, expect: func(m *mockUC.MockMapSession) { m.EXPECT().SelectSuggestion("s2").Once() }},
		{msg: ClientMessage{Type: MsgClearSearch}, expect: func(m *mockUC.MockMapSession) { m.EXPECT().ClearSearch().Once() }},
		{msg: ClientMessage{Type: MsgToggleFavorite}, expect: func(m *mockUC.MockMapSession) { m.EXPECT().ToggleFavorite().Once() }},
		{msg: ClientMessage{Type: MsgDirections}, expect: func(m *mockUC.MockMapSession) { m.EXPECT().OpenDirections().Once() }},
		{msg: ClientMessage{Type: MsgDial}, expect: func(m *mockUC.MockMapSession) { m.EXPECT().DialOwner().Once() }},
	}

	for _, tt := range tests {
		t.Run(tt.msg.Type, func(t *testing.T) {
			d, mapSession, _ := newTestDispatcher(t)
			tt.expect(mapSession)

			require.NoError(t, d.Dispatch(tt.msg))
		})
	}
}

func TestDispatcher_LocationEvents(t *testing.T) {
	d, _, reporter := newTestDispatcher(t)

	require.NoError(t, d.Dispatch(ClientMessage{Type: MsgPermission, Granted: true}))
	require.NoError(t, d.Dispatch(ClientMessage{Type: MsgPermission, Reason: "User said no"}))
	require.NoError(t, d.Dispatch(ClientMessage{Type: MsgPosition, Latitude: coordPtr(10.8), Longitude: coordPtr(78.69)}))
	require.NoError(t, d.Dispatch(ClientMessage{Type: MsgPositionError, Message: "GPS off"}))

	require.Len(t, reporter.permissions, 2)
	assert.True(t, reporter.permissions[0].IsGranted())
	assert.Equal(t, "User said no", reporter.permissions[1].Reason)
	assert.Equal(t, []entity.Coordinate{{Latitude: 10.8, Longitude: 78.69}}, reporter.positions)
	assert.Equal(t, []string{"GPS off"}, reporter.errors)
}

func TestDispatcher_HelloDeclaresSchemes(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	require.NoError(t, d.Dispatch(ClientMessage{Type: MsgHello, Schemes: []string{"tel"}}))

	assert.True(t, d.Launcher.CanOpen(context.Background(), "tel:123"))
	assert.False(t, d.Launcher.CanOpen(context.Background(), "comgooglemaps://?q=1,2"))
}

func TestDispatcher_RejectsMalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		msg  ClientMessage
	}{
		{name: "position without longitude", msg: ClientMessage{Type: MsgPosition, Latitude: coordPtr(10.8)}},
		{name: "position out of range", msg: ClientMessage{Type: MsgPosition, Latitude: coordPtr(95), Longitude: coordPtr(78)}},
		{name: "select pin without store", msg: ClientMessage{Type: MsgSelectPin}},
		{name: "suggestion without store", msg: ClientMessage{Type: MsgSelectSuggestion}},
		{name: "unknown type", msg: ClientMessage{Type: "teleport"}},
		{name: "missing type", msg: ClientMessage{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, reporter := newTestDispatcher(t)

			err := d.Dispatch(tt.msg)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Empty(t, reporter.positions)
		})
	}
}
