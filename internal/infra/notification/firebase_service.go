package notification

import (
	"context"
	"fmt"

	"storefront/internal/domain/service"
	fbinfra "storefront/internal/infra/firebase"

	"firebase.google.com/go/v4/messaging"
)

// messagingClient is the subset of *messaging.Client used for topic pushes
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messagingClient
}

// NewFirebaseService creates a Firebase Cloud Messaging notification service
func NewFirebaseService(ctx context.Context, apps *fbinfra.Apps) (service.NotificationService, error) {
	client, err := apps.Messaging(ctx)
	if err != nil {
		return nil, err
	}

	return newFirebaseService(client), nil
}

func newFirebaseService(client messagingClient) *firebaseService {
	return &firebaseService{client: client}
}

// SendTopicNotification pushes one message to every device subscribed to topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) (string, error) {
	if topic == "" {
		return "", fmt.Errorf("topic is required")
	}

	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	id, err := s.client.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to send topic notification: %w", err)
	}

	return id, nil
}
