package service

import (
	"context"
	"encoding/json"

	"crm-agent-be/internal/dto"
	"crm-agent-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains action events and writes the audit trail. It
// acks malformed messages to avoid infinite redelivery.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
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
	var event dto.ActionEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("agent-audit", "Failed to unmarshal action event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	cs.logger.Info("agent-audit", "Agent action recorded", map[string]interface{}{
		"conversation_id": event.ConversationId,
		"intent":          event.Intent,
		"action_type":     event.ActionType,
		"reasoning":       event.Reasoning,
		"occurred_at":     event.OccurredAt,
	})
	msg.Ack()
}
