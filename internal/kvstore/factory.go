package kvstore

import (
	"fmt"

	"github.com/go-redis/redis"

	"ledgerly/internal/config"
	"ledgerly/internal/database"
	"ledgerly/internal/logger"
)

// Backend names accepted in STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// redisKeyPrefix namespaces ledger blobs in a shared redis database.
const redisKeyPrefix = "ledgerly:"

// CleanupFunc releases resources held by a backend.
type CleanupFunc func() error

// Result contains the store and its cleanup function.
type Result struct {
	Store   BlobStore
	Cleanup CleanupFunc
}

// New creates the blob store selected by cfg.StoreBackend.
func New(cfg *config.Config) (*Result, error) {
	switch cfg.StoreBackend {
	case BackendMemory:
		logger.Get().Info("Using in-memory ledger store; data is lost on exit")
		return &Result{Store: NewMemoryStore(), Cleanup: func() error { return nil }}, nil
	case BackendSQLite, BackendPostgres:
		return newGormBackend(cfg)
	case BackendRedis:
		return newRedisBackend(cfg)
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}
}

func newGormBackend(cfg *config.Config) (*Result, error) {
	dbConfig, err := database.NewConfig(cfg.StoreBackend)
	if err != nil {
		return nil, fmt.Errorf("failed to load database configuration: %w", err)
	}
	if cfg.StoreBackend == BackendSQLite {
		dbConfig.Path = cfg.SQLitePath
	}

	manager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := manager.RunMigrations(); err != nil {
		_ = manager.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	store := NewGormStore(manager.DB())
	if manager.Driver() == database.DriverSQLite {
		if err := store.AutoMigrate(); err != nil {
			_ = manager.Close()
			return nil, err
		}
	}

	logger.Get().Infow("Initialized relational ledger store", "driver", manager.Driver())
	return &Result{Store: store, Cleanup: manager.Close}, nil
}

func newRedisBackend(cfg *config.Config) (*Result, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping().Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	store := NewRedisStore(client, redisKeyPrefix)
	logger.Get().Infow("Initialized redis ledger store", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	return &Result{Store: store, Cleanup: store.Close}, nil
}
