package memory

import (
	"context"
	"sort"
	"time"

	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
)

type packRepo struct {
	db *DB
}

func (r *packRepo) List(ctx context.Context) ([]packs.Pack, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]packs.Pack, 0, len(r.db.packs))
	for _, p := range r.db.packs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *packRepo) Get(ctx context.Context, id int) (packs.Pack, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.packs[id]
	if !ok {
		return packs.Pack{}, packs.ErrNotFound
	}

	ms := r.db.members[id]
	p.Wolves = make([]wolves.Wolf, 0, len(ms))
	for _, m := range ms {
		if w, ok := r.db.wolves[m.wolfID]; ok {
			p.Wolves = append(p.Wolves, w)
		}
	}
	p.WolvesLoaded = true
	return p, nil
}

func (r *packRepo) Insert(ctx context.Context, p packs.Pack) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.seqPack++
	p.ID = r.db.seqPack
	p.Wolves = nil
	p.WolvesLoaded = false
	r.db.packs[p.ID] = p
	return p.ID, nil
}

func (r *packRepo) Update(ctx context.Context, p packs.Pack) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.packs[p.ID]; !exists {
		return packs.ErrNotFound
	}
	p.Wolves = nil
	p.WolvesLoaded = false
	r.db.packs[p.ID] = p
	return nil
}

func (r *packRepo) Delete(ctx context.Context, id int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.packs[id]; !exists {
		return packs.ErrNotFound
	}
	delete(r.db.packs, id)
	delete(r.db.members, id)
	return nil
}

func (r *packRepo) AddMember(ctx context.Context, packID, wolfID int, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.packs[packID]; !exists {
		return packs.ErrNotFound
	}
	if _, exists := r.db.wolves[wolfID]; !exists {
		return wolves.ErrNotFound
	}
	for _, m := range r.db.members[packID] {
		if m.wolfID == wolfID {
			return packs.ErrAlreadyMember
		}
	}
	r.db.members[packID] = append(r.db.members[packID], membership{wolfID: wolfID, addedAt: at})
	return nil
}

func (r *packRepo) RemoveMember(ctx context.Context, packID, wolfID int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.packs[packID]; !exists {
		return packs.ErrNotFound
	}
	ms := r.db.members[packID]
	for i, m := range ms {
		if m.wolfID == wolfID {
			r.db.members[packID] = append(ms[:i:i], ms[i+1:]...)
			return nil
		}
	}
	return packs.ErrNotMember
}
