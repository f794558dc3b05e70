package memory

import (
	"context"
	"sort"

	"wolfpack/internal/domain/wolves"
)

type wolfRepo struct {
	db *DB
}

func (r *wolfRepo) List(ctx context.Context) ([]wolves.Wolf, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]wolves.Wolf, 0, len(r.db.wolves))
	for _, w := range r.db.wolves {
		out = append(out, w)
	}

	// Orden estable por id (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *wolfRepo) Get(ctx context.Context, id int) (wolves.Wolf, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	w, ok := r.db.wolves[id]
	if !ok {
		return wolves.Wolf{}, wolves.ErrNotFound
	}
	return w, nil
}

func (r *wolfRepo) Insert(ctx context.Context, w wolves.Wolf) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.seqWolf++
	w.ID = r.db.seqWolf
	r.db.wolves[w.ID] = w
	return w.ID, nil
}

func (r *wolfRepo) Update(ctx context.Context, w wolves.Wolf) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.wolves[w.ID]; !exists {
		return wolves.ErrNotFound
	}
	r.db.wolves[w.ID] = w
	return nil
}

// Delete borra el lobo y lo saca de todas las manadas.
func (r *wolfRepo) Delete(ctx context.Context, id int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.wolves[id]; !exists {
		return wolves.ErrNotFound
	}
	delete(r.db.wolves, id)

	for packID, ms := range r.db.members {
		kept := ms[:0]
		for _, m := range ms {
			if m.wolfID != id {
				kept = append(kept, m)
			}
		}
		r.db.members[packID] = kept
	}
	return nil
}
