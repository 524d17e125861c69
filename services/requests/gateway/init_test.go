package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/piresc/bloodlink/internal/pkg/constants"
	"github.com/piresc/bloodlink/internal/pkg/events"
	"github.com/piresc/bloodlink/internal/pkg/models"
	natspkg "github.com/piresc/bloodlink/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startBus(t *testing.T) events.Bus {
	ns, err := server.NewServer(&server.Options{Host: "127.0.0.1", Port: -1, NoLog: true, NoSigs: true})
	require.NoError(t, err)
	go ns.Start()
	t.Cleanup(ns.Shutdown)
	require.True(t, ns.ReadyForConnections(5*time.Second))

	client, err := natspkg.NewClient(ns.ClientURL(), "requests-gateway-test")
	require.NoError(t, err)

	bus, err := events.NewNATSBus(client, "")
	require.NoError(t, err)
	t.Cleanup(bus.Close)
	return bus
}

func subscribe(t *testing.T, bus events.Bus, subject string) <-chan []byte {
	received := make(chan []byte, 1)
	require.NoError(t, bus.Subscribe(subject, func(_ context.Context, data []byte) error {
		received <- data
		return nil
	}))
	return received
}

func waitFor(t *testing.T, ch <-chan []byte) []byte {
	select {
	case data := <-ch:
		return data
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishDonationEvent_RoutesByStatus(t *testing.T) {
	bus := startBus(t)
	gw := NewRequestGW(bus)

	tests := []struct {
		status  models.DonationStatus
		subject string
	}{
		{models.DonationStatusScheduled, constants.SubjectDonationScheduled},
		{models.DonationStatusCompleted, constants.SubjectDonationCompleted},
		{models.DonationStatusCancelled, constants.SubjectDonationCancelled},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			received := subscribe(t, bus, tt.subject)

			err := gw.PublishDonationEvent(context.Background(), models.DonationEvent{
				DonationID: "don-1",
				Status:     tt.status,
				Units:      1,
			})
			require.NoError(t, err)

			event, err := events.Decode[models.DonationEvent](waitFor(t, received))
			require.NoError(t, err)
			assert.Equal(t, "don-1", event.DonationID)
			assert.Equal(t, tt.status, event.Status)
		})
	}
}

func TestPublishRequestEvents(t *testing.T) {
	bus := startBus(t)
	gw := NewRequestGW(bus)

	created := subscribe(t, bus, constants.SubjectRequestCreated)
	changed := subscribe(t, bus, constants.SubjectRequestStatusChanged)

	require.NoError(t, gw.PublishRequestCreated(context.Background(), models.RequestEvent{
		RequestID: "req-1",
		Status:    models.RequestStatusOpen,
	}))
	require.NoError(t, gw.PublishRequestStatusChanged(context.Background(), models.RequestEvent{
		RequestID:      "req-1",
		Status:         models.RequestStatusCompleted,
		PreviousStatus: models.RequestStatusOpen,
	}))

	first, err := events.Decode[models.RequestEvent](waitFor(t, created))
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusOpen, first.Status)

	second, err := events.Decode[models.RequestEvent](waitFor(t, changed))
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusOpen, second.PreviousStatus)
}

type flakyPublisher struct {
	failures int
	calls    int
}

func (p *flakyPublisher) Publish(context.Context, string, interface{}) error {
	p.calls++
	if p.calls <= p.failures {
		return errors.New("broker unavailable")
	}
	return nil
}

func (p *flakyPublisher) Close() {}

func TestPublish_DeliversOnce(t *testing.T) {
	pub := &flakyPublisher{}
	gw := NewRequestGW(pub)

	err := gw.PublishRequestCreated(context.Background(), models.RequestEvent{RequestID: "r"})

	require.NoError(t, err)
	assert.Equal(t, 1, pub.calls)
}

func TestPublish_RetriesTransientFailures(t *testing.T) {
	pub := &flakyPublisher{failures: 1}
	gw := NewRequestGW(pub)

	err := gw.PublishRequestCreated(context.Background(), models.RequestEvent{RequestID: "req-1"})

	require.NoError(t, err)
	assert.Equal(t, 2, pub.calls)
}

func TestPublish_GivesUpAfterMaxRetries(t *testing.T) {
	pub := &flakyPublisher{failures: 10}
	gw := NewRequestGW(pub)

	err := gw.PublishDonationEvent(context.Background(), models.DonationEvent{DonationID: "don-1"})

	require.Error(t, err)
	assert.Equal(t, 4, pub.calls)
}
