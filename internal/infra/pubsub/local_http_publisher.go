package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription  = "projects/local/subscriptions/store-events-sub"
	localPushAttempts  = 3
	localRetryBackoff  = 250 * time.Millisecond
	localClientTimeout = 10 * time.Second
)

// PushMessage is the envelope a Pub/Sub push subscription POSTs to its endpoint
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
		OrderingKey string            `json:"orderingKey,omitempty"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher stands in for a push subscription during development: it
// POSTs the envelope straight to the worker and retries while the worker
// answers 5xx, as Pub/Sub would redeliver.
type localHTTPPublisher struct {
	endpoint     string
	httpClient   *http.Client
	retryBackoff time.Duration
	logger       *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher that pushes to endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:     endpoint,
		httpClient:   &http.Client{Timeout: localClientTimeout},
		retryBackoff: localRetryBackoff,
		logger:       logger,
	}
}

func (p *localHTTPPublisher) PublishStoreEvent(ctx context.Context, event *service.StoreEvent) error {
	body, err := newPushBody(event)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= localPushAttempts; attempt++ {
		retry, err := p.push(ctx, body, event.RequestID)
		if err == nil {
			p.logger.Info("[LocalPubSub] Event pushed",
				slog.String("endpoint", p.endpoint),
				slog.String("type", string(event.Type)),
				slog.String("store_id", event.StoreID),
				slog.Int("attempt", attempt),
			)

			return nil
		}
		lastErr = err
		if !retry || attempt == localPushAttempts {
			break
		}

		p.logger.Warn("[LocalPubSub] Worker unavailable, retrying",
			slog.String("store_id", event.StoreID),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.retryBackoff * time.Duration(attempt)):
		}
	}

	return lastErr
}

// push sends one delivery and reports whether a failure is worth retrying.
func (p *localHTTPPublisher) push(ctx context.Context, body []byte, requestID string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return false, nil
	}

	return resp.StatusCode >= http.StatusInternalServerError,
		errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
}

func newPushBody(event *service.StoreEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	msg.Message.OrderingKey = event.StoreID

	body, err := json.Marshal(msg)

	return body, errors.WithStack(err)
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
