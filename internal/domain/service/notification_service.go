package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendTopicNotification pushes a notification to every device subscribed to a topic
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) (messageID string, err error)
}

// StoreTopic is the push topic that followers of a store subscribe to.
func StoreTopic(storeID string) string {
	return "store-" + storeID
}
