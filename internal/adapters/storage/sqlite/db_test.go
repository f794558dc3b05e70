package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"wolfpack/internal/adapters/storage/storetest"
	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
)

func TestStores(t *testing.T) {
	storetest.Run(t, func(t *testing.T) (wolves.Store, packs.Store) {
		db, err := Open(context.Background(), filepath.Join(t.TempDir(), "data", "wolfpack.db"))
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		t.Cleanup(func() { _ = db.Close() })
		return Stores(db)
	})
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "wolfpack.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}
