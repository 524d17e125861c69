package nats

import (
	"encoding/json"
	"fmt"

	"github.com/piresc/bloodlink/internal/pkg/logger"
)

// Producer publishes JSON encoded messages over a shared Client
type Producer struct {
	client *Client
}

// NewProducer creates a new NATS producer
func NewProducer(client *Client) (*Producer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}
	return &Producer{client: client}, nil
}

// Publish marshals message to JSON and sends it to the specified subject
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.client.Publish(subject, msgBytes); err != nil {
		return err
	}

	logger.Debug("Published message", logger.String("subject", subject))
	return nil
}
