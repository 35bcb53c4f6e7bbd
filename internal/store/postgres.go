package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPoolSize = 10

// PostgresKV implements KV on a single kv_entries table. Expired rows are
// hidden from reads and removed by PurgeExpired.
type PostgresKV struct {
	pool *pgxpool.Pool
}

// NewPostgresKV creates a pooled connection and verifies it.
func NewPostgresKV(ctx context.Context, connString string) (*PostgresKV, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresKV{pool: pool}, nil
}

// Get returns the live value of key.
func (s *PostgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, queryGetEntry, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return value, err
}

// Set upserts key.
func (s *PostgresKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := s.pool.Exec(ctx, queryUpsertEntry, entryArgs(Entry{Key: key, Value: value, TTL: ttl}))
	return err
}

// SetMulti upserts every entry in one transaction.
func (s *PostgresKV) SetMulti(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, e := range entries {
			batch.Queue(queryUpsertEntry, entryArgs(e))
		}
		return tx.SendBatch(ctx, batch).Close()
	})
}

// Delete removes key.
func (s *PostgresKV) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, queryDeleteEntry, key)
	return err
}

// PurgeExpired deletes expired rows and returns how many were removed.
func (s *PostgresKV) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, queryPurgeExpired)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Migrate applies pending schema migrations.
func (s *PostgresKV) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// Ping verifies the database connection is alive.
func (s *PostgresKV) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (s *PostgresKV) Close() error {
	s.pool.Close()
	return nil
}

func entryArgs(e Entry) pgx.NamedArgs {
	var expiresAt *time.Time
	if e.TTL > 0 {
		t := time.Now().Add(e.TTL)
		expiresAt = &t
	}
	return pgx.NamedArgs{
		"key":        e.Key,
		"value":      e.Value,
		"expires_at": expiresAt,
	}
}
