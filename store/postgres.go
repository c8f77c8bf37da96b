package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver
)

// PostgresStore keeps each collection as one row in a documents table,
// with the body stored as jsonb. Put is a single upsert statement, so the
// replacement is atomic on the database side.
type PostgresStore struct {
	db *sql.DB
}

const createDocumentsTable = `
	CREATE TABLE IF NOT EXISTS documents (
		collection TEXT PRIMARY KEY,
		body       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

func NewPostgresStore(dsn string, timeout time.Duration) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database handle: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database within %v: %w", timeout, err)
	}

	if _, err = db.ExecContext(ctx, createDocumentsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure documents table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, collection string) ([]byte, error) {
	var body []byte
	query := `SELECT body FROM documents WHERE collection = $1`
	err := s.db.QueryRowContext(ctx, query, collection).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	return body, nil
}

func (s *PostgresStore) Put(ctx context.Context, collection string, body []byte) error {
	query := `
		INSERT INTO documents (collection, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (collection)
		DO UPDATE SET body = EXCLUDED.body, updated_at = now()`
	if _, err := s.db.ExecContext(ctx, query, collection, body); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
