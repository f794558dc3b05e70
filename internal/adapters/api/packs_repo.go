package api

import (
	"context"
	"fmt"

	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
	"wolfpack/internal/platform/httpclient"
	"wolfpack/internal/wire"
)

// PacksRepo implementa packs.Repository contra la API remota.
type PacksRepo struct {
	c *httpclient.Client
}

func NewPacksRepo(c *httpclient.Client) *PacksRepo {
	return &PacksRepo{c: c}
}

var _ packs.Repository = (*PacksRepo)(nil)

// List nunca trae miembros: el endpoint de colección no los incluye.
func (r *PacksRepo) List(ctx context.Context) ([]packs.Pack, error) {
	var raw []wire.PackRecord
	if err := r.c.Get(ctx, "/packs", &raw); err != nil {
		return nil, err
	}
	return wire.ToPacks(raw)
}

func (r *PacksRepo) GetByID(ctx context.Context, id int) (packs.Pack, error) {
	var raw wire.PackRecord
	if err := r.c.Get(ctx, packPath(id), &raw); err != nil {
		return packs.Pack{}, err
	}
	p, err := wire.ToPack(raw)
	if err != nil {
		return packs.Pack{}, err
	}
	if !p.WolvesLoaded {
		// GET por id siempre representa la membresía, aunque el servidor omita el campo vacío.
		p.Wolves = []wolves.Wolf{}
		p.WolvesLoaded = true
	}
	return p, nil
}

func (r *PacksRepo) Create(ctx context.Context, p packs.Pack) (int, error) {
	var resp wire.CreatedResponse
	if err := r.c.Post(ctx, "/packs", wire.NewPackPayload(p), &resp); err != nil {
		return 0, err
	}
	if resp.ID <= 0 {
		return 0, fmt.Errorf("create pack: server returned no id")
	}
	return resp.ID, nil
}

func (r *PacksRepo) Update(ctx context.Context, p packs.Pack) error {
	if !p.Persisted() {
		return fmt.Errorf("update pack: %w", packs.ErrInvalidInput)
	}
	return r.c.Put(ctx, packPath(p.ID), wire.NewPackPayload(p))
}

func (r *PacksRepo) Delete(ctx context.Context, id int) error {
	return r.c.Delete(ctx, packPath(id))
}

func (r *PacksRepo) AddMember(ctx context.Context, packID, wolfID int) error {
	return r.c.Post(ctx, memberPath(packID, wolfID), nil, nil)
}

func (r *PacksRepo) RemoveMember(ctx context.Context, packID, wolfID int) error {
	return r.c.Delete(ctx, memberPath(packID, wolfID))
}

func packPath(id int) string {
	return fmt.Sprintf("/packs/%d", id)
}

func memberPath(packID, wolfID int) string {
	return fmt.Sprintf("/packs/%d/wolf/%d", packID, wolfID)
}
