// Package redis backs the optional generation cache.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPingTimeout = 2 * time.Second
	// Cache calls sit on the generation path, so a slow Redis must fail fast
	// and be treated as a miss.
	defaultOpTimeout = 500 * time.Millisecond
)

// Config describes the cache connection. An empty Addr means caching is off.
type Config struct {
	Addr        string
	Password    string
	DB          int
	PingTimeout time.Duration
	OpTimeout   time.Duration
}

func (c Config) options() *redis.Options {
	op := c.OpTimeout
	if op <= 0 {
		op = defaultOpTimeout
	}
	return &redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.DB,
		DialTimeout:  op,
		ReadTimeout:  op,
		WriteTimeout: op,
		MaxRetries:   1,
	}
}

// Connect opens the cache client and pings it once. It returns (nil, nil)
// when Addr is empty.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	ping := cfg.PingTimeout
	if ping <= 0 {
		ping = defaultPingTimeout
	}

	client := redis.NewClient(cfg.options())

	pingCtx, cancel := context.WithTimeout(ctx, ping)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("generation cache %s: %w", cfg.Addr, err)
	}
	return client, nil
}
