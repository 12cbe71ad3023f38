package session

import (
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// Reporter receives the device location platform events.
type Reporter interface {
	ReportPermission(result service.PermissionResult)
	ReportPosition(coord entity.Coordinate)
	ReportError(message string)
}

// Dispatcher routes client messages to the presenter and the location reporter.
type Dispatcher struct {
	Session  usecase.MapSession
	Location Reporter
	Launcher *Launcher
}

// Dispatch applies one client message. Malformed messages return ErrValidationFailed.
func (d *Dispatcher) Dispatch(msg ClientMessage) error {
	switch msg.Type {
	case MsgHello:
		d.Launcher.Declare(msg.Schemes)

	case MsgPermission:
		if msg.Granted {
			d.Location.ReportPermission(service.Granted())
		} else {
			d.Location.ReportPermission(service.Denied(msg.Reason))
		}

	case MsgPosition:
		if msg.Latitude == nil || msg.Longitude == nil {
			return domainerrors.ErrValidationFailed.WithDetails("position needs latitude and longitude")
		}
		coord := entity.Coordinate{Latitude: *msg.Latitude, Longitude: *msg.Longitude}
		if coord.Latitude < -90 || coord.Latitude > 90 || coord.Longitude < -180 || coord.Longitude > 180 {
			return domainerrors.ErrValidationFailed.WithDetails("position out of range")
		}
		d.Location.ReportPosition(coord)

	case MsgPositionError:
		d.Location.ReportError(msg.Message)

	case MsgSelectPin:
		if msg.StoreID == "" {
			return domainerrors.ErrValidationFailed.WithDetails("select_pin needs store_id")
		}
		d.Session.SelectPin(msg.StoreID)

	case MsgCloseSheet:
		d.Session.CloseSheet()

	case MsgOpenFab:
		d.Session.OpenFabMenu()

	case MsgCloseFab:
		d.Session.CloseFabMenu()

	case MsgRecenter:
		d.Session.Recenter()

	case MsgQuery:
		d.Session.TypeQuery(msg.Query)

	case MsgSelectSuggestion:
		if msg.StoreID == "" {
			return domainerrors.ErrValidationFailed.WithDetails("select_suggestion needs store_id")
		}
		d.Session.SelectSuggestion(msg.StoreID)

	case MsgClearSearch:
		d.Session.ClearSearch()

	case MsgToggleFavorite:
		d.Session.ToggleFavorite()

	case MsgDirections:
		d.Session.OpenDirections()

	case MsgDial:
		d.Session.DialOwner()

	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown message type: " + msg.Type)
	}

	return nil
}
