package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Deletes the lock only while it still carries the caller's token, so a
// requester whose lease expired cannot release a lock someone else now holds.
var releaseLockScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end

	return 0
`)

type RedisLockService struct {
	client redis.UniversalClient
}

func NewRedisLockService(client redis.UniversalClient) *RedisLockService {
	return &RedisLockService{
		client: client,
	}
}

func (s *RedisLockService) TryAcquire(ctx context.Context, key string, lease time.Duration) (string, bool, error) {
	token := uuid.NewString()

	acquired, err := s.client.SetNX(ctx, key, token, lease).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	if !acquired {
		return "", false, nil
	}

	return token, true, nil
}

func (s *RedisLockService) Release(ctx context.Context, key, token string) error {
	err := releaseLockScript.Run(ctx, s.client, []string{key}, token).Err()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", key, err)
	}

	return nil
}
