package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// PostgresStore keeps the blobs in a single kv_store table.
type PostgresStore struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewPostgresStore(db *sql.DB, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{DB: db, Log: logger}
}

// OpenPostgres connects with retries and brings the schema up to date.
func OpenPostgres(dsn string, attempts int, delay time.Duration, logger *zap.Logger) (*PostgresStore, error) {
	db, err := connectDBWithRetry(dsn, attempts, delay, logger)
	if err != nil {
		return nil, err
	}
	if err := runMigrations(dsn, logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewPostgresStore(db, logger), nil
}

func connectDBWithRetry(dsn string, attempts int, delay time.Duration, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 0; i < attempts; i++ {
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			if err = db.Ping(); err == nil {
				return db, nil
			}
			_ = db.Close()
		}
		logger.Warn("db ping error", zap.Error(err), zap.Int("attempt", i+1), zap.Int("attempts", attempts))
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("db connect failed: %w", err)
}

func runMigrations(dsn string, logger *zap.Logger) error {
	logger.Info("running postgres migrations")

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("migration open db: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("migration driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations/postgres")
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("migration init: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("migration close failed", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no new migrations, already up to date")
	}

	return nil
}

func (r *PostgresStore) Load(ctx context.Context, key string) (string, bool, error) {
	r.Log.Debug("Load: start", zap.String("key", key))
	var v string
	if err := r.DB.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key=$1`, key).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Debug("Load: not found", zap.String("key", key))
			return "", false, nil
		}
		r.Log.Error("Load: query failed", zap.String("key", key), zap.Error(err))
		return "", false, err
	}
	r.Log.Debug("Load: success", zap.String("key", key), zap.Int("bytes", len(v)))
	return v, true, nil
}

func (r *PostgresStore) Save(ctx context.Context, key, value string) error {
	r.Log.Debug("Save: start", zap.String("key", key))
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO kv_store(key, value, updated_at) VALUES($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		r.Log.Error("Save: upsert failed", zap.String("key", key), zap.Error(err))
		return err
	}
	r.Log.Debug("Save: success", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

func (r *PostgresStore) Remove(ctx context.Context, key string) error {
	r.Log.Debug("Remove: start", zap.String("key", key))
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE key=$1`, key); err != nil {
		r.Log.Error("Remove: delete failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (r *PostgresStore) Close() error {
	return r.DB.Close()
}
