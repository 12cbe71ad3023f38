package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// LocationState is the device location as seen by a map session.
type LocationState struct {
	Location *entity.Coordinate
	Loading  bool
	Err      string
}

// LocationTracker drives permission, first fix and continuous watching for one device.
type LocationTracker interface {
	// Start runs the tracker in the background. onChange is called for every state change.
	Start(ctx context.Context, onChange func(LocationState))

	// State returns the latest location state.
	State() LocationState

	// Close cancels the watch. No callback fires after Close returns.
	Close()
}
