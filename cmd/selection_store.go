package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	memorystore "storefront/internal/adapters/out/memory/selectionstore"
	redisstore "storefront/internal/adapters/out/redis/selectionstore"
	"storefront/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// NewSelectionStore builds the session store named by SELECTION_STORE. The
// returned close function releases its connections.
func NewSelectionStore(configs Config, logger *slog.Logger) (ports.SelectionStore, func() error, error) {
	kind, err := configs.SelectionStoreKind()
	if err != nil {
		return nil, nil, err
	}
	ttl, err := configs.SessionTTL()
	if err != nil {
		return nil, nil, err
	}

	if kind == SelectionStoreMemory {
		logger.Info("Using in-memory delivery form store", "ttl", ttl.String())
		return memorystore.NewStore(ttl), func() error { return nil }, nil
	}

	opts, err := redisOptions(configs)
	if err != nil {
		return nil, nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Using Redis delivery form store", "addr", opts.Addr, "ttl", ttl.String())
	return redisstore.NewStore(client, configs.RedisKeyPrefix, ttl), client.Close, nil
}

func redisOptions(configs Config) (*redis.Options, error) {
	if configs.RedisURL != "" {
		opts, err := redis.ParseURL(configs.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		return opts, nil
	}

	addr := strings.TrimSpace(configs.RedisAddr)
	if addr == "" {
		addr = "localhost:6379"
	}
	return &redis.Options{Addr: addr, Password: configs.RedisPassword}, nil
}
