package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/bloodlink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("user:reset:abc", "user-1", 30*time.Minute).SetVal("OK")

	err := client.Set(context.Background(), "user:reset:abc", "user-1", 30*time.Minute)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Get(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock redismock.ClientMock)
		expected  string
		expectErr error
	}{
		{
			name: "Existing key",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("user:reset:abc").SetVal("user-1")
			},
			expected: "user-1",
		},
		{
			name: "Missing key",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("user:reset:abc").RedisNil()
			},
			expectErr: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			client := &RedisClient{Client: db}
			tt.setup(mock)

			val, err := client.Get(context.Background(), "user:reset:abc")

			if tt.expectErr != nil {
				assert.True(t, errors.Is(err, tt.expectErr))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, val)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("user:reset:abc").SetVal(1)

	assert.NoError(t, client.Delete(context.Background(), "user:reset:abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoAddAndRemove(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	ctx := context.Background()

	mock.ExpectGeoAdd("requests:geo", &redis.GeoLocation{
		Longitude: -118.2437,
		Latitude:  34.0522,
		Name:      "request-1",
	}).SetVal(1)
	mock.ExpectZRem("requests:geo", "request-1").SetVal(1)

	require.NoError(t, client.GeoAdd(ctx, "requests:geo", -118.2437, 34.0522, "request-1"))
	require.NoError(t, client.GeoRemove(ctx, "requests:geo", "request-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoAdd_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGeoAdd("requests:geo", &redis.GeoLocation{
		Longitude: -118.2437,
		Latitude:  34.0522,
		Name:      "request-1",
	}).SetErr(errors.New("connection reset"))

	err := client.GeoAdd(context.Background(), "requests:geo", -118.2437, 34.0522, "request-1")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoRadius(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	expected := []redis.GeoLocation{
		{Name: "request-1", Longitude: -118.2337, Latitude: 34.0622, Dist: 1.44},
		{Name: "request-2", Longitude: -118.1437, Latitude: 34.1522, Dist: 14.44},
	}

	mock.ExpectGeoRadius("requests:geo", -118.2437, 34.0522, &redis.GeoRadiusQuery{
		Radius:    15,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Sort:      "ASC",
	}).SetVal(expected)

	locations, err := client.GeoRadius(context.Background(), "requests:geo", -118.2437, 34.0522, 15, "km")

	assert.NoError(t, err)
	assert.Equal(t, expected, locations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Sets(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	ctx := context.Background()

	mock.ExpectSAdd("donors:available", "donor-1").SetVal(1)
	mock.ExpectSIsMember("donors:available", "donor-1").SetVal(true)
	mock.ExpectSRem("donors:available", "donor-1").SetVal(1)
	mock.ExpectSIsMember("donors:available", "donor-1").SetVal(false)

	require.NoError(t, client.SAdd(ctx, "donors:available", "donor-1"))
	ok, err := client.SIsMember(ctx, "donors:available", "donor-1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, client.SRem(ctx, "donors:available", "donor-1"))
	ok, err = client.SIsMember(ctx, "donors:available", "donor-1")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, client.Ping(context.Background()))
	assert.Equal(t, db, client.GetClient())
	assert.NoError(t, mock.ExpectationsWereMet())
}
