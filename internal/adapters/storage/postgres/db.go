package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wolfpack/internal/adapters/storage/sqldb"
	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql) y aplica el schema.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para el servidor de desarrollo
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS wolves (
	id         SERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	gender     TEXT NOT NULL,
	birthday   DATE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS packs (
	id         SERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	lat        DOUBLE PRECISION NOT NULL DEFAULT 0,
	lng        DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS pack_wolves (
	pack_id  INTEGER NOT NULL REFERENCES packs(id) ON DELETE CASCADE,
	wolf_id  INTEGER NOT NULL REFERENCES wolves(id) ON DELETE CASCADE,
	added_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (pack_id, wolf_id)
);

CREATE INDEX IF NOT EXISTS pack_wolves_wolf_idx ON pack_wolves (wolf_id);
`

// Migrate crea las tablas si no existen (idempotente).
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgres: migrate: %w", err)
	}
	return nil
}

// Stores devuelve los stores de dominio sobre la conexión.
func Stores(db *sql.DB) (wolves.Store, packs.Store) {
	return sqldb.NewWolvesRepo(db, sqldb.Postgres), sqldb.NewPacksRepo(db, sqldb.Postgres)
}
