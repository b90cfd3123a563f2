package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema holds the idempotent DDL for the service's tables. Applied at
// startup; production migrations run through the deploy pipeline, this
// covers local and test databases.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS landmarks (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		image              TEXT NOT NULL DEFAULT '',
		lat                DOUBLE PRECISION NOT NULL,
		lng                DOUBLE PRECISION NOT NULL,
		estimated_duration INTEGER NOT NULL,
		category           TEXT NOT NULL,
		tour_type          TEXT NOT NULL,
		created_at         TIMESTAMPTZ NOT NULL,
		updated_at         TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_landmarks_tour_type ON landmarks (tour_type)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id                TEXT PRIMARY KEY,
		user_id           TEXT NOT NULL,
		itinerary_details JSONB NOT NULL,
		total_price       INTEGER NOT NULL,
		group_size        INTEGER NOT NULL,
		start_date        DATE NOT NULL,
		contact_name      TEXT NOT NULL,
		contact_email     TEXT NOT NULL,
		contact_phone     TEXT NOT NULL DEFAULT '',
		special_requests  TEXT NOT NULL DEFAULT '',
		status            TEXT NOT NULL,
		created_at        TIMESTAMPTZ NOT NULL,
		updated_at        TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user_created ON bookings (user_id, created_at DESC)`,
}

// EnsureSchema applies the service schema, creating missing tables and
// indexes.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
