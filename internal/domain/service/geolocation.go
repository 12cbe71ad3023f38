package service

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// PermissionStatus is the outcome of a location permission request.
type PermissionStatus int

const (
	PermissionGranted PermissionStatus = iota + 1
	PermissionDenied
)

// PermissionResult is a tagged permission outcome. Reason is set only when denied.
type PermissionResult struct {
	Status PermissionStatus
	Reason string
}

// Granted builds a granted permission result.
func Granted() PermissionResult {
	return PermissionResult{Status: PermissionGranted}
}

// Denied builds a denied permission result.
func Denied(reason string) PermissionResult {
	if reason == "" {
		reason = "Permission to access location was denied"
	}

	return PermissionResult{Status: PermissionDenied, Reason: reason}
}

// IsGranted reports whether access to location was granted.
func (r PermissionResult) IsGranted() bool {
	return r.Status == PermissionGranted
}

// PositionRequest configures a one-shot position read.
type PositionRequest struct {
	Timeout      time.Duration
	HighAccuracy bool
	MaxAge       time.Duration
}

// WatchOptions configures a continuous position stream.
type WatchOptions struct {
	HighAccuracy         bool
	DistanceFilterMeters float64
	Interval             time.Duration
	FastestInterval      time.Duration
}

// PositionWatch is a cancelable stream of position updates.
type PositionWatch interface {
	Positions() <-chan entity.Coordinate
	Errors() <-chan error

	// Cancel stops the stream and closes both channels. Safe to call more than once.
	Cancel()
}

// Geolocation abstracts the device location platform.
type Geolocation interface {
	RequestPermission(ctx context.Context) (PermissionResult, error)
	CurrentPosition(ctx context.Context, req PositionRequest) (entity.Coordinate, error)
	Watch(ctx context.Context, opts WatchOptions) (PositionWatch, error)
}
