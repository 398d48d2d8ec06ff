package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisSessionKey = "kateder:session"

// RedisStore keeps the credential in a redis hash, for setups where the
// client runs on a shared host and the session should not live in a
// local file. Same lifecycle as FileStore, different backing.
type RedisStore struct {
	redis *redis.Client
}

func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{redis: client}, nil
}

func (s *RedisStore) Token() (string, bool) {
	token, err := s.redis.HGet(context.Background(), redisSessionKey, "token").Result()
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

func (s *RedisStore) Save(token string) error {
	now := time.Now().UTC()
	err := s.redis.HSet(context.Background(), redisSessionKey, map[string]interface{}{
		"token":          token,
		"saved_dttm_utc": now.Format(sessionTimeFormat),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear() error {
	if err := s.redis.Del(context.Background(), redisSessionKey).Err(); err != nil {
		return fmt.Errorf("failed to erase session: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}
