package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bloodlink/internal/pkg/logger"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestNewGracefulServer(t *testing.T) {
	e := echo.New()
	s := NewGracefulServer(e, logger.NewNopLogger(), models.ServerConfig{Host: "127.0.0.1", Port: 8080, ReadTimeout: 5}, nil)

	assert.Equal(t, "127.0.0.1:8080", s.address)
	assert.Equal(t, defaultShutdownTimeout, s.shutdownTimeout)
	assert.Equal(t, 5*time.Second, e.Server.ReadTimeout)
}

func TestGracefulServer_RunServesAndStops(t *testing.T) {
	port := freePort(t)
	e := echo.New()
	e.HideBanner = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	var closed []string
	sm := NewShutdownManager(logger.NewNopLogger())
	sm.Register("redis", func(context.Context) error { closed = append(closed, "redis"); return nil })

	s := NewGracefulServer(e, logger.NewNopLogger(), models.ServerConfig{Host: "127.0.0.1", Port: port, ShutdownTimeout: 5}, sm)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/ping", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, []string{"redis"}, closed)
}

func TestGracefulServer_RunFailsOnBusyPort(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	e := echo.New()
	e.HideBanner = true
	s := NewGracefulServer(e, logger.NewNopLogger(), models.ServerConfig{Host: "127.0.0.1", Port: l.Addr().(*net.TCPAddr).Port}, nil)

	err = s.Run(context.Background())
	assert.ErrorContains(t, err, "failed to start server")
}

func TestShutdownManager_ReverseOrder(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	var results []string
	for _, name := range []string{"postgres", "redis", "events"} {
		name := name
		sm.Register(name, func(context.Context) error {
			results = append(results, name)
			return nil
		})
	}

	require.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, []string{"events", "redis", "postgres"}, results)
}

func TestShutdownManager_ContinuesPastFailures(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	boom := errors.New("boom")
	var ran []string

	sm.Register("postgres", func(context.Context) error { ran = append(ran, "postgres"); return nil })
	sm.Register("redis", func(context.Context) error { ran = append(ran, "redis"); return boom })
	sm.Register("events", func(context.Context) error { panic("closed twice") })

	err := sm.Shutdown(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "events: panic: closed twice")
	assert.Equal(t, []string{"redis", "postgres"}, ran)
}

func TestShutdownManager_Empty(t *testing.T) {
	assert.NoError(t, NewShutdownManager(logger.NewNopLogger()).Shutdown(context.Background()))
}

func TestShutdownManager_ConcurrentRegister(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sm.Register("c", func(context.Context) error { return nil })
		}()
	}
	wg.Wait()

	assert.Len(t, sm.components, 50)
}
