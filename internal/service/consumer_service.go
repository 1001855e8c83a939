package service

import (
	"context"
	"encoding/json"

	"customer-notes-be/internal/pkg/logger"
	"customer-notes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the domain-event topic and writes an audit log
// line per event. Events are auxiliary; a failed consumer never fails the
// request that published.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
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
	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.log.Warn("events", "failed to unmarshal domain event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads are not retriable
		return
	}

	cs.log.Info("events", "domain event received", map[string]interface{}{
		"type":        event.Type,
		"data":        event.Data,
		"occurred_at": event.OccurredAt,
	})
	msg.Ack()
}
