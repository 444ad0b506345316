package store

import (
	"context"
	"embed"
	"fmt"
)

// Keys of the three persisted blobs.
const (
	KeyRequests    = "disaster-recovery-requests"
	KeyVolunteers  = "disaster-recovery-volunteers"
	KeyCurrentUser = "disaster-recovery-user"
)

// KV is an opaque string key-value store. Load reports ok=false for an absent key.
type KV interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by configuration.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

//go:embed migrations
var migrationsFS embed.FS

type UnknownBackendError struct {
	Name string
}

func (e UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown store backend %q", e.Name)
}
