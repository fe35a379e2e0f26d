package valkey

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/config"
)

// Store implements cache.Store on a Valkey/Redis instance. Entries carry no
// server-side TTL; freshness is the gate's concern and entries live until
// overwritten or removed.
type Store struct {
	client *redis.Client
	log    *zap.Logger
}

// NewStore connects to Valkey and verifies the connection.
func NewStore(ctx context.Context, cfg config.Valkey, log *zap.Logger) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		DB:   cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping valkey: %w", err)
	}

	log.Info("Valkey connection established",
		zap.String("host", cfg.Host),
		zap.String("port", cfg.Port))

	return &Store{client: client, log: log}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
