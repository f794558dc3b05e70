package controller

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"

	"golang.org/x/sync/errgroup"
)

type DashboardView struct {
	Loading bool
	Wolves  []wolves.Wolf // últimos actualizados primero
	Packs   []packs.Pack
	Err     error
}

// Dashboard muestra lo actualizado más recientemente.
type Dashboard struct {
	wolves wolves.Repository
	packs  packs.Repository
	deps   Deps

	mu      sync.Mutex
	loading bool
	recentW []wolves.Wolf
	recentP []packs.Pack
	err     error
}

func NewDashboard(wolvesRepo wolves.Repository, packsRepo packs.Repository, deps Deps) *Dashboard {
	return &Dashboard{
		wolves:  wolvesRepo,
		packs:   packsRepo,
		deps:    deps.withDefaults(),
		loading: true,
	}
}

// Load trae ambas listas en paralelo. Un fallo en una no impide mostrar la otra.
func (d *Dashboard) Load(ctx context.Context) error {
	var (
		ws         []wolves.Wolf
		ps         []packs.Pack
		werr, perr error
	)

	var g errgroup.Group
	g.Go(func() error {
		ws, werr = d.wolves.List(ctx)
		return nil
	})
	g.Go(func() error {
		ps, perr = d.packs.List(ctx)
		return nil
	})
	_ = g.Wait()

	if werr != nil {
		d.deps.failure("list wolves", werr)
	}
	if perr != nil {
		d.deps.failure("list packs", perr)
	}
	err := errors.Join(werr, perr)

	d.mu.Lock()
	defer d.mu.Unlock()
	if werr == nil {
		d.recentW = recent(ws, func(w wolves.Wolf) time.Time { return w.UpdatedAt }, d.deps.RecentCount)
	}
	if perr == nil {
		d.recentP = recent(ps, func(p packs.Pack) time.Time { return p.UpdatedAt }, d.deps.RecentCount)
	}
	d.loading = false
	d.err = err
	return err
}

func (d *Dashboard) View() DashboardView {
	d.mu.Lock()
	defer d.mu.Unlock()

	return DashboardView{
		Loading: d.loading,
		Wolves:  slices.Clone(d.recentW),
		Packs:   slices.Clone(d.recentP),
		Err:     d.err,
	}
}
