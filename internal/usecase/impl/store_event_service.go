package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// storeEventService implements the StoreEventUsecase interface.
type storeEventService struct {
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewStoreEventService is the constructor for storeEventService.
func NewStoreEventService(notificationSvc service.NotificationService, logger *slog.Logger) usecase.StoreEventUsecase {
	return &storeEventService{
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// HandleStoreEvent pushes the event to the store topic.
func (srv *storeEventService) HandleStoreEvent(ctx context.Context, event *service.StoreEvent) (string, error) {
	if event == nil || event.StoreID == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("store id is required")
	}

	title, body, err := storeEventMessage(event)
	if err != nil {
		return "", err
	}

	data := map[string]string{
		"type":      string(event.Type),
		"store_id":  event.StoreID,
		"latitude":  strconv.FormatFloat(event.Latitude, 'f', -1, 64),
		"longitude": strconv.FormatFloat(event.Longitude, 'f', -1, 64),
	}

	messageID, err := srv.notificationSvc.SendTopicNotification(ctx, service.StoreTopic(event.StoreID), title, body, data)
	if err != nil {
		return "", fmt.Errorf("failed to send store notification: %w", err)
	}
	srv.logger.Info("Store notification sent",
		"type", event.Type,
		"storeID", event.StoreID,
		"messageID", messageID,
	)

	return messageID, nil
}

func storeEventMessage(event *service.StoreEvent) (title, body string, err error) {
	name := event.ShopName
	if name == "" {
		name = "A shop you follow"
	}

	switch event.Type {
	case service.StoreEventOpened:
		title = name + " is open"
		body = "Tap to see it on the map."
	case service.StoreEventRelocated:
		title = name + " has moved"
		body = "Tap to see the new location."
	default:
		return "", "", domainerrors.ErrValidationFailed.WithDetails("unknown event type: " + string(event.Type))
	}
	if event.Address != "" {
		body = event.Address
	}

	return title, body, nil
}
