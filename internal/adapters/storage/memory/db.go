package memory

import (
	"sync"
	"time"

	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
)

// DB guarda lobos, manadas y membresías bajo un solo lock
// para que los borrados en cascada sean atómicos.
type DB struct {
	mu sync.RWMutex

	wolves  map[int]wolves.Wolf
	packs   map[int]packs.Pack
	members map[int][]membership // packID -> miembros en orden de alta

	seqWolf int
	seqPack int
}

type membership struct {
	wolfID  int
	addedAt time.Time
}

func NewDB() *DB {
	return &DB{
		wolves:  make(map[int]wolves.Wolf),
		packs:   make(map[int]packs.Pack),
		members: make(map[int][]membership),
	}
}

func (db *DB) Wolves() wolves.Store {
	return &wolfRepo{db: db}
}

func (db *DB) Packs() packs.Store {
	return &packRepo{db: db}
}
