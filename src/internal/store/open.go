package store

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Options struct {
	Backend string

	SQLitePath string

	PostgresDSN     string
	ConnectAttempts int
	ConnectDelay    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Open builds the backend named by opts.Backend.
func Open(ctx context.Context, opts Options, logger *zap.Logger) (KV, error) {
	logger.Info("opening store", zap.String("backend", opts.Backend))
	switch opts.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite:
		return OpenSQLite(opts.SQLitePath, logger)
	case BackendPostgres:
		return OpenPostgres(opts.PostgresDSN, opts.ConnectAttempts, opts.ConnectDelay, logger)
	case BackendRedis:
		return OpenRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB, opts.RedisPrefix, logger)
	}
	return nil, UnknownBackendError{Name: opts.Backend}
}
