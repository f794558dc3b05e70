// Package storetest es la batería común que deben pasar todos los stores
// del servidor de desarrollo (memory, sqlite, postgres).
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
)

// Run ejecuta la batería sobre stores vacíos. newStores se llama una vez por subtest.
func Run(t *testing.T, newStores func(t *testing.T) (wolves.Store, packs.Store)) {
	t.Helper()

	t.Run("wolves crud", func(t *testing.T) { testWolvesCRUD(t, newStores) })
	t.Run("packs crud", func(t *testing.T) { testPacksCRUD(t, newStores) })
	t.Run("membership", func(t *testing.T) { testMembership(t, newStores) })
	t.Run("cascade", func(t *testing.T) { testCascade(t, newStores) })
}

var base = time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)

func newWolf(name string, g wolves.Gender) wolves.Wolf {
	return wolves.Wolf{
		Name:      name,
		Gender:    g,
		Birthday:  time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: base,
		UpdatedAt: base,
	}
}

func testWolvesCRUD(t *testing.T, newStores func(t *testing.T) (wolves.Store, packs.Store)) {
	ws, _ := newStores(t)
	ctx := context.Background()

	id1, err := ws.Insert(ctx, newWolf("Akela", wolves.GenderMale))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	id2, err := ws.Insert(ctx, newWolf("Raksha", wolves.GenderFemale))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id1 <= 0 || id2 <= id1 {
		t.Fatalf("expected increasing positive ids, got %d, %d", id1, id2)
	}

	got, err := ws.Get(ctx, id1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Akela" || got.Gender != wolves.GenderMale {
		t.Fatalf("unexpected wolf %+v", got)
	}
	if !got.Birthday.Equal(time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("birthday must round-trip as a date, got %v", got.Birthday)
	}
	if !got.CreatedAt.Equal(base) {
		t.Fatalf("created_at must round-trip, got %v", got.CreatedAt)
	}

	later := base.Add(time.Hour)
	got.Name = "Grey"
	got.UpdatedAt = later
	if err := ws.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = ws.Get(ctx, id1)
	if got.Name != "Grey" || !got.UpdatedAt.Equal(later) {
		t.Fatalf("update not applied: %+v", got)
	}

	list, err := ws.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != id1 || list[1].ID != id2 {
		t.Fatalf("expected list ordered by id, got %+v", list)
	}

	if err := ws.Delete(ctx, id1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := ws.Get(ctx, id1); !errors.Is(err, wolves.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := ws.Delete(ctx, id1); !errors.Is(err, wolves.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if err := ws.Update(ctx, wolves.Wolf{ID: id1, Name: "Ghost", Gender: wolves.GenderMale}); !errors.Is(err, wolves.ErrNotFound) {
		t.Fatalf("expected ErrNotFound updating missing wolf, got %v", err)
	}
}

func testPacksCRUD(t *testing.T, newStores func(t *testing.T) (wolves.Store, packs.Store)) {
	_, ps := newStores(t)
	ctx := context.Background()

	id, err := ps.Insert(ctx, packs.Pack{Name: "Seeonee", Latitude: 21.1, Longitude: 79.2, CreatedAt: base, UpdatedAt: base})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	p, err := ps.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name != "Seeonee" || p.Latitude != 21.1 || p.Longitude != 79.2 {
		t.Fatalf("unexpected pack %+v", p)
	}
	if !p.WolvesLoaded || len(p.Wolves) != 0 {
		t.Fatalf("expected loaded empty membership, got %+v", p)
	}

	p.Name = "Waingunga"
	p.Latitude = -33.5
	p.UpdatedAt = base.Add(time.Minute)
	if err := ps.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	list, err := ps.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Waingunga" || list[0].Latitude != -33.5 {
		t.Fatalf("unexpected list %+v", list)
	}
	if list[0].WolvesLoaded {
		t.Fatalf("list must not load members")
	}

	if err := ps.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := ps.Get(ctx, id); !errors.Is(err, packs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func testMembership(t *testing.T, newStores func(t *testing.T) (wolves.Store, packs.Store)) {
	ws, ps := newStores(t)
	ctx := context.Background()

	akela, _ := ws.Insert(ctx, newWolf("Akela", wolves.GenderMale))
	raksha, _ := ws.Insert(ctx, newWolf("Raksha", wolves.GenderFemale))
	packID, err := ps.Insert(ctx, packs.Pack{Name: "Seeonee", CreatedAt: base, UpdatedAt: base})
	if err != nil {
		t.Fatalf("insert pack: %v", err)
	}

	// orden de alta: raksha primero aunque tenga id mayor
	if err := ps.AddMember(ctx, packID, raksha, base); err != nil {
		t.Fatalf("add member: %v", err)
	}
	if err := ps.AddMember(ctx, packID, akela, base.Add(time.Second)); err != nil {
		t.Fatalf("add member: %v", err)
	}
	if err := ps.AddMember(ctx, packID, akela, base.Add(2*time.Second)); !errors.Is(err, packs.ErrAlreadyMember) {
		t.Fatalf("expected ErrAlreadyMember, got %v", err)
	}

	p, err := ps.Get(ctx, packID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(p.Wolves) != 2 || p.Wolves[0].ID != raksha || p.Wolves[1].ID != akela {
		t.Fatalf("expected members in insertion order, got %+v", p.Wolves)
	}

	if err := ps.RemoveMember(ctx, packID, raksha); err != nil {
		t.Fatalf("remove member: %v", err)
	}
	if err := ps.RemoveMember(ctx, packID, raksha); !errors.Is(err, packs.ErrNotMember) {
		t.Fatalf("expected ErrNotMember, got %v", err)
	}

	p, _ = ps.Get(ctx, packID)
	if len(p.Wolves) != 1 || p.Wolves[0].ID != akela {
		t.Fatalf("unexpected members after remove %+v", p.Wolves)
	}
	if _, err := ws.Get(ctx, raksha); err != nil {
		t.Fatalf("removing a member must not delete the wolf: %v", err)
	}
}

func testCascade(t *testing.T, newStores func(t *testing.T) (wolves.Store, packs.Store)) {
	ws, ps := newStores(t)
	ctx := context.Background()

	akela, _ := ws.Insert(ctx, newWolf("Akela", wolves.GenderMale))
	p1, _ := ps.Insert(ctx, packs.Pack{Name: "Seeonee", CreatedAt: base, UpdatedAt: base})
	p2, _ := ps.Insert(ctx, packs.Pack{Name: "Waingunga", CreatedAt: base, UpdatedAt: base})
	_ = ps.AddMember(ctx, p1, akela, base)
	_ = ps.AddMember(ctx, p2, akela, base)

	if err := ps.Delete(ctx, p1); err != nil {
		t.Fatalf("delete pack: %v", err)
	}
	if _, err := ws.Get(ctx, akela); err != nil {
		t.Fatalf("deleting a pack must keep its wolves: %v", err)
	}

	if err := ws.Delete(ctx, akela); err != nil {
		t.Fatalf("delete wolf: %v", err)
	}
	p, err := ps.Get(ctx, p2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(p.Wolves) != 0 {
		t.Fatalf("deleted wolf must leave every pack, got %+v", p.Wolves)
	}
}
