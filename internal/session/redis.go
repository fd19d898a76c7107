package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cstortz/developer-artifacts/internal/config"
)

const keyPrefix = "session:"

type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore connects to the configured redis instance or cluster. The
// universal client covers both; cluster mode just needs more than one
// address.
func NewRedisStore(ctx context.Context, cfg config.Redis) (*RedisStore, error) {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:      cfg.Address,
		Username:   cfg.Username,
		Password:   cfg.Password,
		DB:         cfg.DB,
		MaxRetries: cfg.MaxRetry,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Save(ctx context.Context, sess Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, keyPrefix+sess.RefreshToken, payload, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, refreshToken string) (Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+refreshToken).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("reading session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return Session{}, fmt.Errorf("decoding session: %w", err)
	}
	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, refreshToken string) error {
	n, err := s.client.Del(ctx, keyPrefix+refreshToken).Result()
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
