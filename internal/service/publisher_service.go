package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"style-match-be/internal/pkg/logger"
	"style-match-be/pkg/events"
)

// EventForwarder is an optional second transport, NATS JetStream in production.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	publisher message.Publisher
	forwarder EventForwarder
	logger    logger.ILogger
}

// NewPublisherService publishes on the in-process bus, topic = event type.
// forwarder may be nil.
func NewPublisherService(publisher message.Publisher, forwarder EventForwarder, log logger.ILogger) IPublisherService {
	return &publisherService{
		publisher: publisher,
		forwarder: forwarder,
		logger:    log,
	}
}

func (s *publisherService) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(events.ToEnvelope(event))
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.EventType(), err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(event.EventType(), msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.EventType(), err)
	}

	if s.forwarder != nil {
		// The external bus is auxiliary; requests never fail because of it
		if err := s.forwarder.Publish(ctx, event); err != nil {
			s.logger.Warn("EVENTS", "Failed to forward event", map[string]interface{}{
				"type":  event.EventType(),
				"error": err.Error(),
			})
		}
	}
	return nil
}
