// Package sqlite es el store embebido del servidor de desarrollo (modernc, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"wolfpack/internal/adapters/storage/sqldb"
	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Open abre (o crea) la base en path y aplica el schema.
// ":memory:" sirve para tests; se limita a una conexión para no perder datos.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = "wolfpack.db"
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("sqlite: create dirs: %w", err)
		}
	}

	// _time_format=sqlite: time.Time se guarda como "2006-01-02 15:04:05.999999999-07:00"
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite")
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// SQLite serializa escrituras; una conexión evita SQLITE_BUSY en dev.
	db.SetMaxOpenConns(1)

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS wolves (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	gender     TEXT NOT NULL,
	birthday   TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS packs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	lat        REAL NOT NULL DEFAULT 0,
	lng        REAL NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS pack_wolves (
	pack_id  INTEGER NOT NULL REFERENCES packs(id) ON DELETE CASCADE,
	wolf_id  INTEGER NOT NULL REFERENCES wolves(id) ON DELETE CASCADE,
	added_at TEXT NOT NULL,
	PRIMARY KEY (pack_id, wolf_id)
);

CREATE INDEX IF NOT EXISTS pack_wolves_wolf_idx ON pack_wolves (wolf_id);
`

func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}
	return nil
}

func Stores(db *sql.DB) (wolves.Store, packs.Store) {
	return sqldb.NewWolvesRepo(db, sqldb.SQLite), sqldb.NewPacksRepo(db, sqldb.SQLite)
}
