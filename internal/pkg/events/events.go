// Package events publishes and consumes domain events over the broker chosen
// by EVENTS_BROKER. NATS is the default; NSQ is supported for deployments
// that already run nsqd.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/models"
	natspkg "github.com/piresc/bloodlink/internal/pkg/nats"
	nsqpkg "github.com/piresc/bloodlink/internal/pkg/nsq"
)

// Broker names accepted in EventsConfig.Broker
const (
	BrokerNATS = "nats"
	BrokerNSQ  = "nsq"
)

// Handler processes one event payload
type Handler func(ctx context.Context, data []byte) error

// Publisher sends domain events
type Publisher interface {
	Publish(ctx context.Context, subject string, payload interface{}) error
	Close()
}

// Subscriber delivers domain events to handlers
type Subscriber interface {
	Subscribe(subject string, handler Handler) error
	Close()
}

// Bus is both a Publisher and a Subscriber on a single broker connection
type Bus interface {
	Publisher
	Subscriber
}

// Decode unmarshals a JSON event payload
func Decode[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("failed to decode event: %w", err)
	}
	return v, nil
}

// NewBus connects to the broker selected in config
func NewBus(config *models.Config) (Bus, error) {
	switch config.Events.Broker {
	case BrokerNATS, "":
		client, err := natspkg.NewClient(config.NATS.URL, config.App.Name)
		if err != nil {
			return nil, err
		}
		return NewNATSBus(client, config.Events.QueueGroup)
	case BrokerNSQ:
		return NewNSQBus(config.NSQ, config.Events.QueueGroup)
	}
	return nil, fmt.Errorf("unknown events broker %q", config.Events.Broker)
}

// NATSClient returns the connection behind a NATS bus, or nil for other brokers
func NATSClient(bus Bus) *natspkg.Client {
	if b, ok := bus.(*natsBus); ok {
		return b.client
	}
	return nil
}

// natsBus publishes and consumes over a NATS connection
type natsBus struct {
	client     *natspkg.Client
	producer   *natspkg.Producer
	queueGroup string
	consumers  []*natspkg.Consumer
}

// NewNATSBus wraps an established NATS client
func NewNATSBus(client *natspkg.Client, queueGroup string) (Bus, error) {
	producer, err := natspkg.NewProducer(client)
	if err != nil {
		return nil, err
	}
	return &natsBus{client: client, producer: producer, queueGroup: queueGroup}, nil
}

func (b *natsBus) Publish(ctx context.Context, subject string, payload interface{}) error {
	defer startProducerSegment(ctx, "NATS", subject).End()
	return b.producer.Publish(subject, payload)
}

func (b *natsBus) Subscribe(subject string, handler Handler) error {
	consumer, err := natspkg.NewConsumer(b.client, subject, b.queueGroup, func(data []byte) error {
		return handler(context.Background(), data)
	})
	if err != nil {
		return err
	}
	b.consumers = append(b.consumers, consumer)
	logger.Info("Subscribed to events", logger.String("subject", subject), logger.String("broker", BrokerNATS))
	return nil
}

func (b *natsBus) Close() {
	for _, c := range b.consumers {
		c.Stop()
	}
	b.client.Close()
}

// nsqBus publishes to nsqd and consumes through nsqd or lookupd
type nsqBus struct {
	config    models.NSQConfig
	channel   string
	producer  *nsqpkg.Producer
	consumers []*nsqpkg.Consumer
}

// NewNSQBus connects a producer to the configured nsqd
func NewNSQBus(config models.NSQConfig, channel string) (Bus, error) {
	producer, err := nsqpkg.NewProducer(config.NSQDAddress)
	if err != nil {
		return nil, err
	}
	return &nsqBus{config: config, channel: channel, producer: producer}, nil
}

func (b *nsqBus) Publish(ctx context.Context, subject string, payload interface{}) error {
	defer startProducerSegment(ctx, "NSQ", subject).End()
	return b.producer.Publish(subject, payload)
}

func (b *nsqBus) Subscribe(subject string, handler Handler) error {
	consumer, err := nsqpkg.NewConsumer(subject, b.channel, func(data []byte) error {
		return handler(context.Background(), data)
	})
	if err != nil {
		return err
	}

	if len(b.config.LookupdAddresses) > 0 {
		err = consumer.ConnectToLookupd(b.config.LookupdAddresses)
	} else {
		err = consumer.ConnectToNSQD(b.config.NSQDAddress)
	}
	if err != nil {
		consumer.Stop()
		return err
	}

	b.consumers = append(b.consumers, consumer)
	logger.Info("Subscribed to events", logger.String("subject", subject), logger.String("broker", BrokerNSQ))
	return nil
}

func (b *nsqBus) Close() {
	for _, c := range b.consumers {
		c.Stop()
	}
	b.producer.Stop()
}

// startProducerSegment records the publish on the request's transaction, if any.
// A nil segment is safe to End.
func startProducerSegment(ctx context.Context, library, subject string) *newrelic.MessageProducerSegment {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return nil
	}
	return &newrelic.MessageProducerSegment{
		StartTime:       txn.StartSegmentNow(),
		Library:         library,
		DestinationType: newrelic.MessageTopic,
		DestinationName: subject,
	}
}
