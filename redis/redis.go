package redis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"anke-go-api/config"

	"github.com/redis/go-redis/v9"
)

var (
	rdb         *redis.Client
	initOnce    sync.Once
	initialized bool
	initErr     error
	ErrNil      = errors.New("redis: nil")
)

// InitRedis initializes the shared Redis client once.
func InitRedis(config config.RedisConfig) error {
	initOnce.Do(func() {
		log.Printf("initializing redis client, addr: %s, db: %d", config.Addr, config.DB)

		rdb = redis.NewClient(&redis.Options{
			Addr:         config.Addr,
			Password:     config.Password,
			DB:           config.DB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			initErr = fmt.Errorf("failed to connect to redis at %s: %w", config.Addr, err)
			log.Printf("ERROR: %v", initErr)
			return
		}

		initialized = true
		log.Printf("connected to redis at %s, db: %d", config.Addr, config.DB)
	})

	return initErr
}

// GetClient returns the shared client, attempting a default init if needed.
func GetClient() *redis.Client {
	if !initialized && initErr == nil {
		cfg := config.RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}

		log.Print("redis client not initialized, attempting default configuration")
		if err := InitRedis(cfg); err != nil {
			log.Printf("ERROR: failed to initialize redis with defaults: %v", err)
		}
	}

	if rdb == nil {
		log.Print("WARNING: redis client is nil, cache features degraded")
	}

	return rdb
}

// IsConnected reports whether the client currently answers pings.
func IsConnected() bool {
	if rdb == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return rdb.Ping(ctx).Err() == nil
}

// CloseRedis closes the shared client.
func CloseRedis() {
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Printf("error closing redis client: %v", err)
		}
		rdb = nil
		initialized = false
	}
}
