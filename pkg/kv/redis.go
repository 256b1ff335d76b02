package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/autogestion/dealership-backend/pkg/config"
	"github.com/redis/go-redis/v9"
)

const keyNamespace = "ag"

// Redis is the host-provided persistent backend.
type Redis struct {
	raw *redis.Client
}

// NewRedis bootstraps a Redis backend with pooling/timeouts and verifies
// connectivity once.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Redis{raw: raw}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.DB == 0 {
		opts.DB = cfg.DB
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.MinIdleConns == 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

// Name implements Backend.
func (r *Redis) Name() string {
	return "redis"
}

// Get implements Backend.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.raw.Get(ctx, namespaced(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set implements Backend. Records have no TTL; they live until deleted.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.raw.Set(ctx, namespaced(key), value, 0).Err()
}

// List implements Backend using SCAN so the keyspace walk never blocks the
// server the way KEYS would.
func (r *Redis) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	iter := r.raw.Scan(ctx, 0, namespaced(prefix)+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), keyNamespace+":"))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// Delete implements Backend.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.raw.Del(ctx, namespaced(key)).Err()
}

// Ping implements Backend.
func (r *Redis) Ping(ctx context.Context) error {
	return r.raw.Ping(ctx).Err()
}

// Close implements Backend.
func (r *Redis) Close() error {
	return r.raw.Close()
}

func namespaced(key string) string {
	return keyNamespace + ":" + key
}
