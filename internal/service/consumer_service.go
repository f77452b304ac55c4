package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"style-match-be/internal/pkg/logger"
	"style-match-be/pkg/events"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService warms the pin embedding cache whenever a board is imported.
type consumerService struct {
	subscriber message.Subscriber
	ranking    IRankingService
	logger     logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, ranking IRankingService, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		ranking:    ranking,
		logger:     log,
	}
}

// Consume subscribes and processes messages in the background until ctx ends.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, events.BoardImported)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var env events.Envelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	if err := HandleBoardImported(msg.Context(), cs.ranking, env.Event()); err != nil {
		// Ranking embeds whatever is still missing, so a failed warmup is not retried
		cs.logger.Warn("CONSUMER", "Warmup failed", map[string]interface{}{
			"boardId": events.String(env.Event(), "boardId"),
			"error":   err.Error(),
		})
	}
	msg.Ack()
}

// HandleBoardImported warms the imported board. Shared by every transport.
func HandleBoardImported(ctx context.Context, ranking IRankingService, event events.Event) error {
	boardId := events.String(event, "boardId")
	if boardId == "" {
		return nil
	}
	return ranking.WarmBoard(ctx, boardId)
}
