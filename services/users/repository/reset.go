package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/bloodlink/internal/pkg/constants"
	"github.com/piresc/bloodlink/internal/pkg/models"
)

// SaveResetToken stores a password reset token for userID until ttl elapses
func (r *UserRepo) SaveResetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyPasswordReset, token)
	if err := r.redisClient.Set(ctx, key, userID, ttl); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	return nil
}

// ConsumeResetToken returns the user the token was issued for and deletes it.
// Unknown or expired tokens return models.ErrNotFound.
func (r *UserRepo) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	key := fmt.Sprintf(constants.KeyPasswordReset, token)

	userID, err := r.redisClient.Client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("reset token %w", models.ErrNotFound)
		}
		return "", fmt.Errorf("failed to read reset token: %w", err)
	}
	return userID, nil
}
