package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"style-match-be/internal/pkg/logger"
	"style-match-be/pkg/events"
)

// EventHandler processes one event. A returned error makes JetStream redeliver it.
type EventHandler func(ctx context.Context, event events.Event) error

type Subscriber struct {
	nc              *nats.Conn
	js              jetstream.JetStream
	logger          logger.ILogger
	consumeContexts []jetstream.ConsumeContext
}

func NewSubscriber(url string, log logger.ILogger) (*Subscriber, error) {
	nc, js, err := connect(url)
	if err != nil {
		return nil, err
	}
	ensureStream(js, log)
	return &Subscriber{nc: nc, js: js, logger: log}, nil
}

// Subscribe attaches a durable consumer for one event type.
func (s *Subscriber) Subscribe(ctx context.Context, eventType, durableName string, handler EventHandler) error {
	consumer, err := s.js.CreateOrUpdateConsumer(ctx, StreamName, jetstream.ConsumerConfig{
		Durable:       durableName,
		FilterSubject: Subject(eventType),
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    5,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		var env events.Envelope
		if err := json.Unmarshal(msg.Data(), &env); err != nil {
			s.logger.Error("NATS", "Dropping undecodable event", map[string]interface{}{
				"subject": msg.Subject(),
				"error":   err.Error(),
			})
			_ = msg.Term()
			return
		}

		if err := handler(ctx, env.Event()); err != nil {
			s.logger.Warn("NATS", "Handler failed, event will be redelivered", map[string]interface{}{
				"subject": msg.Subject(),
				"error":   err.Error(),
			})
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	s.consumeContexts = append(s.consumeContexts, cc)
	return nil
}

func (s *Subscriber) Close() {
	for _, cc := range s.consumeContexts {
		cc.Stop()
	}
	if s.nc != nil {
		s.nc.Close()
	}
}
