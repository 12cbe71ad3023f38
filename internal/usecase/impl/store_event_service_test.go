package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreEventService_HandleStoreEvent_Opened(t *testing.T) {
	notifier := mockSvc.NewMockNotificationService(t)
	svc := NewStoreEventService(notifier, newDiscardLogger())
	ctx := context.Background()

	notifier.EXPECT().SendTopicNotification(ctx, "store-s1", "Apple Vandi is open", "Main Road", mock.MatchedBy(func(data map[string]string) bool {
		return data["type"] == "store_opened" && data["store_id"] == "s1" && data["latitude"] == "10.8"
	})).Return("msg-1", nil)

	messageID, err := svc.HandleStoreEvent(ctx, &service.StoreEvent{
		Type:      service.StoreEventOpened,
		StoreID:   "s1",
		ShopName:  "Apple Vandi",
		Address:   "Main Road",
		Latitude:  10.8,
		Longitude: 78.6,
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", messageID)
}

func TestStoreEventService_HandleStoreEvent_RelocatedWithoutName(t *testing.T) {
	notifier := mockSvc.NewMockNotificationService(t)
	svc := NewStoreEventService(notifier, newDiscardLogger())
	ctx := context.Background()

	notifier.EXPECT().SendTopicNotification(ctx, "store-s2", "A shop you follow has moved", "Tap to see the new location.", mock.Anything).
		Return("msg-2", nil)

	_, err := svc.HandleStoreEvent(ctx, &service.StoreEvent{Type: service.StoreEventRelocated, StoreID: "s2"})
	require.NoError(t, err)
}

func TestStoreEventService_HandleStoreEvent_Invalid(t *testing.T) {
	svc := NewStoreEventService(mockSvc.NewMockNotificationService(t), newDiscardLogger())

	_, err := svc.HandleStoreEvent(context.Background(), &service.StoreEvent{Type: service.StoreEventOpened})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.HandleStoreEvent(context.Background(), &service.StoreEvent{Type: "store_deleted", StoreID: "s1"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStoreEventService_HandleStoreEvent_SendFails(t *testing.T) {
	notifier := mockSvc.NewMockNotificationService(t)
	svc := NewStoreEventService(notifier, newDiscardLogger())

	notifier.EXPECT().SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("fcm unavailable"))

	_, err := svc.HandleStoreEvent(context.Background(), &service.StoreEvent{Type: service.StoreEventOpened, StoreID: "s1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send store notification")
}
