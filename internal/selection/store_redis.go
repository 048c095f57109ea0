// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/panelkit/internal/platform/constants"
	"github.com/taibuivan/panelkit/internal/platform/sec"
)

// RedisRepository implements Repository using Redis with a session-length TTL.
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed Repository.
func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{client: client, ttl: ttl}
}

// RedisKey derives the storage key for key.
func RedisKey(key Key) string {
	return constants.RedisPrefixSelection + sec.KeyDigest(key.Session, key.Explorer)
}

/*
Get retrieves the selection state for an explorer instance.

Parameters:
  - context: context.Context
  - key: Key

Returns:
  - State: Empty when absent or expired
  - error: Connectivity or decoding errors
*/
func (repository *RedisRepository) Get(context context.Context, key Key) (State, error) {
	payload, err := repository.client.Get(context, RedisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("redis_selection_get_failed: %w", err)
	}

	var state State
	if err := json.Unmarshal(payload, &state); err != nil {
		return State{}, fmt.Errorf("redis_selection_decode_failed: %w", err)
	}

	return state, nil
}

/*
Set stores the selection state and refreshes its TTL.

Parameters:
  - context: context.Context
  - key: Key
  - state: State

Returns:
  - error: Storage failures
*/
func (repository *RedisRepository) Set(context context.Context, key Key, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("redis_selection_encode_failed: %w", err)
	}

	if err := repository.client.Set(context, RedisKey(key), payload, repository.ttl).Err(); err != nil {
		return fmt.Errorf("redis_selection_set_failed: %w", err)
	}

	return nil
}
