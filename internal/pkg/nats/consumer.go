package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/bloodlink/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject
type Consumer struct {
	subscription *nats.Subscription
}

// NewConsumer subscribes handler to subject. A non-empty queueGroup spreads
// messages across the group's members.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	msgHandler := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Error("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		subscription *nats.Subscription
		err          error
	)
	if queueGroup != "" {
		subscription, err = client.QueueSubscribe(subject, queueGroup, msgHandler)
	} else {
		subscription, err = client.Subscribe(subject, msgHandler)
	}
	if err != nil {
		return nil, err
	}

	return &Consumer{subscription: subscription}, nil
}

// IsActive returns true while the subscription is valid
func (c *Consumer) IsActive() bool {
	return c.subscription != nil && c.subscription.IsValid()
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() {
	if c.subscription == nil {
		return
	}
	if err := c.subscription.Unsubscribe(); err != nil {
		logger.Warn("Failed to unsubscribe", logger.String("subject", c.subscription.Subject), logger.Err(err))
	}
	c.subscription = nil
}
