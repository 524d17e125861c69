package nats

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runServer(t *testing.T) *server.Server {
	t.Helper()
	ns, err := server.NewServer(&server.Options{Host: "127.0.0.1", Port: -1, NoLog: true, NoSigs: true})
	require.NoError(t, err)
	go ns.Start()
	require.True(t, ns.ReadyForConnections(5*time.Second), "nats server did not start")
	t.Cleanup(ns.Shutdown)
	return ns
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	ns := runServer(t)
	client, err := NewClient(ns.ClientURL(), "test")
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func TestNewClient_InvalidAddress(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1", "test")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestNewProducer_NilClient(t *testing.T) {
	producer, err := NewProducer(nil)
	assert.Error(t, err)
	assert.Nil(t, producer)
}

func TestProducerConsumer_RoundTrip(t *testing.T) {
	client := newTestClient(t)
	assert.True(t, client.IsConnected())

	received := make(chan map[string]string, 1)
	consumer, err := NewConsumer(client, "request.created", "", func(data []byte) error {
		var msg map[string]string
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}
		received <- msg
		return nil
	})
	require.NoError(t, err)
	defer consumer.Stop()
	assert.True(t, consumer.IsActive())

	producer, err := NewProducer(client)
	require.NoError(t, err)
	require.NoError(t, producer.Publish("request.created", map[string]string{"request_id": "r1"}))

	select {
	case msg := <-received:
		assert.Equal(t, "r1", msg["request_id"])
	case <-time.After(5 * time.Second):
		t.Fatal("message not delivered")
	}
}

func TestConsumer_QueueGroupDeliversOnce(t *testing.T) {
	client := newTestClient(t)

	deliveries := make(chan string, 4)
	for _, name := range []string{"a", "b"} {
		name := name
		consumer, err := NewConsumer(client, "donation.completed", "donors", func([]byte) error {
			deliveries <- name
			return nil
		})
		require.NoError(t, err)
		defer consumer.Stop()
	}

	require.NoError(t, client.Publish("donation.completed", []byte(`{}`)))
	require.NoError(t, client.Flush())

	select {
	case <-deliveries:
	case <-time.After(5 * time.Second):
		t.Fatal("message not delivered")
	}
	select {
	case extra := <-deliveries:
		t.Fatalf("message delivered twice, second to %s", extra)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestConsumer_HandlerErrorDoesNotStopSubscription(t *testing.T) {
	client := newTestClient(t)

	calls := make(chan struct{}, 2)
	consumer, err := NewConsumer(client, "donor.availability", "", func([]byte) error {
		calls <- struct{}{}
		return errors.New("boom")
	})
	require.NoError(t, err)

	require.NoError(t, client.Publish("donor.availability", []byte(`{}`)))
	require.NoError(t, client.Publish("donor.availability", []byte(`{}`)))

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(5 * time.Second):
			t.Fatal("message not delivered")
		}
	}

	consumer.Stop()
	assert.False(t, consumer.IsActive())
}
