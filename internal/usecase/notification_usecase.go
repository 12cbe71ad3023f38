package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// StoreEventUsecase fans store events out to the devices following a store
type StoreEventUsecase interface {
	// HandleStoreEvent sends the push notification for an event and returns the message id
	HandleStoreEvent(ctx context.Context, event *service.StoreEvent) (string, error)
}
