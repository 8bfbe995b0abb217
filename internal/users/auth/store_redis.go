// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/longpd/folio/internal/platform/apperr"
	"github.com/longpd/folio/internal/platform/constants"
)

// RedisRefreshTokenRepository implements RefreshTokenRepository on Redis;
// the TTL doubles as the token's expiry.
type RedisRefreshTokenRepository struct {
	client *redis.Client
}

func NewRefreshTokenRepository(client *redis.Client) *RedisRefreshTokenRepository {
	return &RedisRefreshTokenRepository{client: client}
}

func refreshKey(tokenHash string) string {
	return constants.RedisPrefixRefreshToken + tokenHash
}

func (repository *RedisRefreshTokenRepository) Set(context context.Context, tokenHash, accountID string, ttl time.Duration) error {
	if err := repository.client.Set(context, refreshKey(tokenHash), accountID, ttl).Err(); err != nil {
		return fmt.Errorf("auth: refresh token set failed: %w", err)
	}
	return nil
}

// Get returns the owning account id, or Unauthorized when the token is
// absent or expired.
func (repository *RedisRefreshTokenRepository) Get(context context.Context, tokenHash string) (string, error) {
	accountID, err := repository.client.Get(context, refreshKey(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.Unauthorized("Invalid or expired refresh token")
		}
		return "", fmt.Errorf("auth: refresh token get failed: %w", err)
	}
	return accountID, nil
}

func (repository *RedisRefreshTokenRepository) Delete(context context.Context, tokenHash string) error {
	if err := repository.client.Del(context, refreshKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("auth: refresh token delete failed: %w", err)
	}
	return nil
}
