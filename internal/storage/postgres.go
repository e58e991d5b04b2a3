package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStorage struct {
	db *pgxpool.Pool
}

// NewPostgresStorage ensures the key/value table exists before returning
func NewPostgresStorage(ctx context.Context, db *pgxpool.Pool) (*PostgresStorage, error) {
	_, err := db.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS site_state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create site_state table: %w", err)
	}

	return &PostgresStorage{db: db}, nil
}

func (s *PostgresStorage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRow(ctx, `SELECT value FROM site_state WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", newError("get", key, err)
	}
	return value, nil
}

func (s *PostgresStorage) Set(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO site_state (key, value)
	VALUES ($1, $2)
	ON CONFLICT (key)
	DO UPDATE SET value = $2, updated_at = now()`
	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		return newError("set", key, err)
	}
	return nil
}

func (s *PostgresStorage) Close() error {
	s.db.Close()
	return nil
}
