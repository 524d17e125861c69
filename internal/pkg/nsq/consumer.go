package nsq

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/bloodlink/internal/pkg/logger"
)

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer creates a consumer for topic/channel. It does not connect;
// call ConnectToNSQD or ConnectToLookupd once the handler is in place.
func NewConsumer(topic, channel string, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLogger(zapAdapter{}, nsq.LogLevelWarning)
	consumer.AddHandler(messageHandler(topic, handler))

	return &Consumer{consumer: consumer}, nil
}

// messageHandler adapts handler to go-nsq. A returned error requeues the
// message; success finishes it.
func messageHandler(topic string, handler MessageHandler) nsq.HandlerFunc {
	return func(message *nsq.Message) error {
		if len(message.Body) == 0 {
			return nil
		}
		if err := handler(message.Body); err != nil {
			logger.Error("Error processing message",
				logger.String("topic", topic),
				logger.Int("attempts", int(message.Attempts)),
				logger.Err(err))
			return err
		}
		return nil
	}
}

// ConnectToNSQD connects the consumer directly to an NSQ daemon
func (c *Consumer) ConnectToNSQD(address string) error {
	if err := c.consumer.ConnectToNSQD(address); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return nil
}

// ConnectToLookupd connects the consumer to NSQ lookupd instances
func (c *Consumer) ConnectToLookupd(addresses []string) error {
	if err := c.consumer.ConnectToNSQLookupds(addresses); err != nil {
		return fmt.Errorf("failed to connect to NSQ lookupd at %s: %w", strings.Join(addresses, ","), err)
	}
	return nil
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer and waits for in-flight handlers
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}

// zapAdapter routes go-nsq's internal logging to the global zap logger
type zapAdapter struct{}

func (zapAdapter) Output(_ int, s string) error {
	logger.Warn("nsq", logger.String("message", s))
	return nil
}
