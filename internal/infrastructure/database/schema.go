package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// schemaStatements create the gallery tables when missing. seq keeps
// insertion order for unsorted listings.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS authors (
        seq              BIGSERIAL,
        id               TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
        name             TEXT NOT NULL,
        last_name        TEXT NOT NULL,
        face_picture_url TEXT NOT NULL DEFAULT ''
    )`,
	`CREATE TABLE IF NOT EXISTS pictures (
        seq       BIGSERIAL,
        id        TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
        title     TEXT NOT NULL,
        image_url TEXT NOT NULL,
        genre     TEXT NOT NULL,
        author_id TEXT NOT NULL
    )`,
	`CREATE INDEX IF NOT EXISTS idx_pictures_author_id ON pictures (author_id)`,
}

// EnsureSchema runs the idempotent DDL for the authors and pictures tables
// in a single transaction.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	err := WithTransaction(ctx, db.Pool, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Info().Msg("[DATABASE] Schema ready")
	return nil
}

// Truncate empties both gallery tables.
func (db *PostgresDB) Truncate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}
	if _, err := db.Pool.Exec(ctx, `TRUNCATE TABLE pictures, authors`); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}
