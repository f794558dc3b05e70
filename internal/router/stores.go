package router

import (
	"context"
	"fmt"

	"wolfpack/internal/adapters/storage/memory"
	pg "wolfpack/internal/adapters/storage/postgres"
	"wolfpack/internal/adapters/storage/sqlite"
	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
)

// Stores agrupa la persistencia elegida y cómo cerrarla.
type Stores struct {
	Kind   string
	Wolves wolves.Store
	Packs  packs.Store
	Close  func() error
}

// OpenStores elige: DSN => Postgres, sqlitePath => SQLite, si no in-memory.
func OpenStores(ctx context.Context, dsn, sqlitePath string) (Stores, error) {
	switch {
	case dsn != "":
		db, err := pg.Open(ctx, dsn)
		if err != nil {
			return Stores{}, fmt.Errorf("open postgres: %w", err)
		}
		w, p := pg.Stores(db)
		return Stores{Kind: "postgres", Wolves: w, Packs: p, Close: db.Close}, nil

	case sqlitePath != "":
		db, err := sqlite.Open(ctx, sqlitePath)
		if err != nil {
			return Stores{}, fmt.Errorf("open sqlite: %w", err)
		}
		w, p := sqlite.Stores(db)
		return Stores{Kind: "sqlite", Wolves: w, Packs: p, Close: db.Close}, nil

	default:
		db := memory.NewDB()
		return Stores{
			Kind:   "memory",
			Wolves: db.Wolves(),
			Packs:  db.Packs(),
			Close:  func() error { return nil },
		}, nil
	}
}
