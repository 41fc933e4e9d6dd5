package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS progress (
	slot       TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore keeps slots in a Postgres table
type PostgresStore struct {
	pool *pgxpool.Pool
	slot string
}

// NewPostgresStore connects to connString and creates the table if needed
func NewPostgresStore(ctx context.Context, connString, slot string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &PostgresStore{pool: pool, slot: slot}, nil
}

// Load reads the slot row
func (s *PostgresStore) Load(ctx context.Context) (Progress, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, "SELECT data FROM progress WHERE slot = $1", s.slot).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return Progress{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}

	p := Progress{}
	if err := json.Unmarshal(raw, &p); err != nil {
		return Progress{}, nil
	}
	return p, nil
}

// Save upserts the slot row
func (s *PostgresStore) Save(ctx context.Context, p Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO progress (slot, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		s.slot, string(data))
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
