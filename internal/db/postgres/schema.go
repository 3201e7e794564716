package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is the subset of pgx used to apply DDL.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Schema lists the idempotent statements that create the content tables.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		slug        TEXT NOT NULL UNIQUE,
		"order"     INTEGER NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS entries (
		id           TEXT PRIMARY KEY,
		category_id  TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		summary      TEXT NOT NULL DEFAULT '',
		body         TEXT NOT NULL DEFAULT '',
		tags         TEXT[] NOT NULL DEFAULT '{}',
		published    BOOLEAN NOT NULL DEFAULT FALSE,
		"order"      INTEGER NOT NULL DEFAULT 0,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS entries_category_id_idx ON entries (category_id)`,
	`CREATE TABLE IF NOT EXISTS glossary_items (
		id            TEXT PRIMARY KEY,
		term          TEXT NOT NULL,
		meaning       TEXT NOT NULL,
		context       TEXT NOT NULL DEFAULT '',
		examples      TEXT NOT NULL DEFAULT '',
		related_terms TEXT[] NOT NULL DEFAULT '{}',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS support_contacts (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		role        TEXT NOT NULL CHECK (role IN ('parent', 'teacher', 'social_worker', 'all')),
		region      TEXT NOT NULL DEFAULT '',
		zip_codes   TEXT[] NOT NULL DEFAULT '{}',
		phone       TEXT NOT NULL DEFAULT '',
		email       TEXT NOT NULL DEFAULT '',
		website     TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		category    TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate applies Schema in order.
func Migrate(ctx context.Context, db Execer) error {
	for i, stmt := range Schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}
	return nil
}
