package service

import (
	"context"
)

// StoreEventType names what happened to a store.
type StoreEventType string

const (
	StoreEventOpened    StoreEventType = "store_opened"
	StoreEventRelocated StoreEventType = "store_relocated"
)

// StoreEvent represents a store change to be fanned out by the notification worker
type StoreEvent struct {
	RequestID string         `json:"request_id,omitempty"` // For distributed tracing
	Type      StoreEventType `json:"type"`
	StoreID   string         `json:"store_id"`
	OwnerID   string         `json:"owner_id"`
	ShopName  string         `json:"shop_name"`
	Address   string         `json:"address,omitempty"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStoreEvent publishes a store event for async processing
	PublishStoreEvent(ctx context.Context, event *StoreEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
