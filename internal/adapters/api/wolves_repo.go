package api

import (
	"context"
	"fmt"

	"wolfpack/internal/domain/wolves"
	"wolfpack/internal/platform/httpclient"
	"wolfpack/internal/wire"
)

// WolvesRepo implementa wolves.Repository contra la API remota.
// Sin caché: cada llamada es un único request.
type WolvesRepo struct {
	c *httpclient.Client
}

func NewWolvesRepo(c *httpclient.Client) *WolvesRepo {
	return &WolvesRepo{c: c}
}

var _ wolves.Repository = (*WolvesRepo)(nil)

func (r *WolvesRepo) List(ctx context.Context) ([]wolves.Wolf, error) {
	var raw []wire.WolfRecord
	if err := r.c.Get(ctx, "/wolves", &raw); err != nil {
		return nil, err
	}
	return wire.ToWolves(raw)
}

func (r *WolvesRepo) GetByID(ctx context.Context, id int) (wolves.Wolf, error) {
	var raw wire.WolfRecord
	if err := r.c.Get(ctx, wolfPath(id), &raw); err != nil {
		return wolves.Wolf{}, err
	}
	return wire.ToWolf(raw)
}

func (r *WolvesRepo) Create(ctx context.Context, w wolves.Wolf) (int, error) {
	var resp wire.CreatedResponse
	if err := r.c.Post(ctx, "/wolves", wire.NewWolfPayload(w), &resp); err != nil {
		return 0, err
	}
	if resp.ID <= 0 {
		return 0, fmt.Errorf("create wolf: server returned no id")
	}
	return resp.ID, nil
}

func (r *WolvesRepo) Update(ctx context.Context, w wolves.Wolf) error {
	if !w.Persisted() {
		return fmt.Errorf("update wolf: %w", wolves.ErrInvalidInput)
	}
	return r.c.Put(ctx, wolfPath(w.ID), wire.NewWolfPayload(w))
}

func (r *WolvesRepo) Delete(ctx context.Context, id int) error {
	return r.c.Delete(ctx, wolfPath(id))
}

func wolfPath(id int) string {
	return fmt.Sprintf("/wolves/%d", id)
}
