package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
	"wolfpack/internal/ports/dialog"
	"wolfpack/internal/ports/nav"
	"wolfpack/internal/ports/notify"

	"golang.org/x/sync/errgroup"
)

// memberCallLimit acota las llamadas de membresía en vuelo de un mismo lote.
const memberCallLimit = 4

// PackDraft son los campos editables del formulario de manada.
type PackDraft struct {
	Name      string
	Latitude  float64
	Longitude float64
}

func packDraftFrom(p packs.Pack) PackDraft {
	return PackDraft{Name: p.Name, Latitude: p.Latitude, Longitude: p.Longitude}
}

func (d PackDraft) applyTo(p packs.Pack) packs.Pack {
	p.Name = d.Name
	p.Latitude = d.Latitude
	p.Longitude = d.Longitude
	return p
}

type PackView struct {
	Loading  bool
	Items    []packs.Pack
	Mode     Mode
	Selected packs.Pack // con Wolves cargado cuando hay selección
	Draft    PackDraft
	Err      error
}

type PackList struct {
	repo   packs.Repository
	wolves wolves.Repository // candidatos del diálogo de selección
	deps   Deps

	mu       sync.Mutex
	loading  bool
	items    []packs.Pack
	mode     Mode
	selected packs.Pack
	draft    PackDraft
	err      error
}

func NewPackList(repo packs.Repository, wolvesRepo wolves.Repository, deps Deps) *PackList {
	return &PackList{
		repo:    repo,
		wolves:  wolvesRepo,
		deps:    deps.withDefaults(),
		loading: true,
	}
}

func (c *PackList) Open(ctx context.Context, route nav.Route) error {
	loadErr := c.Load(ctx)
	if route == nil {
		return loadErr
	}
	id, ok := route.EntityID()
	if !ok {
		return loadErr
	}
	return errors.Join(loadErr, c.Select(ctx, id))
}

func (c *PackList) Load(ctx context.Context) error {
	items, err := c.repo.List(ctx)
	if err != nil {
		c.fail("list packs", err)
		return err
	}
	sortByName(items, func(p packs.Pack) string { return p.Name })

	c.mu.Lock()
	c.items = items
	c.loading = false
	c.err = nil
	c.mu.Unlock()
	return nil
}

// Select trae la manada con sus miembros; descarta ediciones sin guardar.
func (c *PackList) Select(ctx context.Context, id int) error {
	p, err := c.repo.GetByID(ctx, id)
	if err != nil {
		c.fail("get pack", err)
		return err
	}
	p.Wolves = packs.UniqueMembers(p.Wolves)

	c.mu.Lock()
	c.mode = ModeViewing
	c.selected = p
	c.draft = packDraftFrom(p)
	c.err = nil
	c.mu.Unlock()
	return nil
}

// OpenCreate arranca un formulario vacío en la ubicación actual.
// Si el locator falla se usa (0,0).
func (c *PackList) OpenCreate(ctx context.Context) {
	pt, err := c.deps.Locator.Locate(ctx)
	if err != nil {
		c.deps.Log.Warn("locate failed, using 0,0", map[string]any{"err": err})
		pt.Latitude, pt.Longitude = 0, 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = ModeCreating
	c.selected = packs.Pack{Wolves: []wolves.Wolf{}, WolvesLoaded: true}
	c.draft = PackDraft{Latitude: pt.Latitude, Longitude: pt.Longitude}
}

func (c *PackList) Edit(fn func(d *PackDraft)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeNone {
		return ErrNothingSelected
	}
	fn(&c.draft)
	if c.mode == ModeViewing {
		c.mode = ModeEditing
	}
	return nil
}

// SetLocation es el click en el mapa: mueve las coordenadas del formulario.
func (c *PackList) SetLocation(lat, lng float64) error {
	return c.Edit(func(d *PackDraft) {
		d.Latitude = lat
		d.Longitude = lng
	})
}

func (c *PackList) Save(ctx context.Context) (int, error) {
	c.mu.Lock()
	mode, selected, draft := c.mode, c.selected, c.draft
	c.mu.Unlock()

	switch mode {
	case ModeNone:
		return 0, ErrNothingSelected

	case ModeCreating:
		p := draft.applyTo(packs.Pack{})
		if err := packs.Validate(p); err != nil {
			c.fail("validate pack", err)
			return 0, err
		}
		id, err := c.repo.Create(ctx, p)
		if err != nil {
			c.fail("create pack", err)
			return 0, err
		}
		c.deps.success(msgCreatedPack)

		_ = c.Load(ctx)
		_ = c.Select(ctx, id)
		return id, nil

	default:
		if !selected.Persisted() {
			return 0, ErrNotPersisted
		}
		p := draft.applyTo(selected)
		if err := packs.Validate(p); err != nil {
			c.fail("validate pack", err)
			return 0, err
		}
		if err := c.repo.Update(ctx, p); err != nil {
			c.fail("update pack", err)
			return 0, err
		}
		c.deps.success(msgUpdated)

		_ = c.Load(ctx)
		_ = c.Select(ctx, p.ID)
		return p.ID, nil
	}
}

func (c *PackList) Delete(ctx context.Context, id int) (bool, error) {
	name, err := c.nameOf(ctx, id)
	if err != nil {
		c.fail("get pack", err)
		return false, err
	}

	ok, err := c.deps.Confirmer.Confirm(ctx, dialog.Prompt{
		Title: "Delete pack",
		Text:  fmt.Sprintf(`Are you sure you want to permanently remove the pack "%s"?`, name),
	})
	if err != nil || !ok {
		return false, err
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		c.fail("delete pack", err)
		return false, err
	}
	c.deps.success(msgDeleted)

	_ = c.Load(ctx)
	c.Close()
	return true, nil
}

// RemoveMember saca un lobo de la manada seleccionada, previa confirmación.
func (c *PackList) RemoveMember(ctx context.Context, wolfID int) (bool, error) {
	p, err := c.persistedSelection()
	if err != nil {
		return false, err
	}
	w, ok := p.Member(wolfID)
	if !ok {
		err := fmt.Errorf("wolf %d: %w", wolfID, packs.ErrNotMember)
		c.fail("remove member", err)
		return false, err
	}

	ok, err = c.deps.Confirmer.Confirm(ctx, dialog.Prompt{
		Title: "Remove wolf",
		Text:  fmt.Sprintf(`Are you sure you want to remove the wolf "%s" from the pack "%s"?`, w.Name, p.Name),
	})
	if err != nil || !ok {
		return false, err
	}

	if err := c.repo.RemoveMember(ctx, p.ID, wolfID); err != nil {
		c.fail("remove member", err)
		return false, err
	}
	c.deps.success(msgRemovedMember)

	_ = c.Select(ctx, p.ID)
	return true, nil
}

// AddMembers abre el selector con los lobos que aún no están en la manada y
// hace una llamada por lobo elegido. Una falla no corta las demás: cada una se
// notifica por separado, el lote termina cuando todas se intentaron y al final
// se notifica un resumen.
// Devuelve cuántas altas tuvieron éxito y un *BatchError si hubo fallas.
func (c *PackList) AddMembers(ctx context.Context) (int, error) {
	p, err := c.persistedSelection()
	if err != nil {
		return 0, err
	}

	all, err := c.wolves.List(ctx)
	if err != nil {
		c.fail("list wolves", err)
		return 0, err
	}
	candidates := make([]wolves.Wolf, 0, len(all))
	for _, w := range all {
		if !p.HasMember(w.ID) {
			candidates = append(candidates, w)
		}
	}
	sortByName(candidates, func(w wolves.Wolf) string { return w.Name })

	picked, err := c.deps.Picker.PickWolves(ctx, dialog.PickRequest{
		Title:      fmt.Sprintf("Add wolves to %s", p.Name),
		Candidates: candidates,
	})
	if err != nil {
		return 0, err
	}
	picked = slices.DeleteFunc(packs.UniqueMembers(picked), func(w wolves.Wolf) bool {
		return p.HasMember(w.ID)
	})
	if len(picked) == 0 {
		return 0, nil
	}

	batch := c.addAll(ctx, p.ID, picked)
	if n := batch.Succeeded(); n > 0 {
		noun := "wolf"
		if n > 1 {
			noun = "wolves"
		}
		c.deps.success(fmt.Sprintf("Successfully added %s to pack!", noun))
	}

	// reconciliar siempre: también refleja las altas que sí entraron
	_ = c.Select(ctx, p.ID)

	if len(batch.Failures) > 0 {
		c.deps.Notifier.Notify(notify.Message{
			Level:    notify.LevelError,
			Text:     batch.Summary(),
			Duration: c.deps.NotifyDuration,
		})
		c.deps.Log.Warn("operation failed", map[string]any{"op": "add members", "err": batch})
		c.mu.Lock()
		c.err = batch
		c.mu.Unlock()
		return batch.Succeeded(), batch
	}
	return batch.Succeeded(), nil
}

func (c *PackList) addAll(ctx context.Context, packID int, picked []wolves.Wolf) *BatchError {
	// cada goroutine escribe solo su posición
	failures := make([]*MemberFailure, len(picked))

	var g errgroup.Group
	g.SetLimit(memberCallLimit)
	for i, w := range picked {
		g.Go(func() error {
			err := c.repo.AddMember(ctx, packID, w.ID)
			if err == nil {
				return nil
			}
			c.deps.failure("add member", err)
			failures[i] = &MemberFailure{WolfID: w.ID, WolfName: w.Name, Err: err}
			// nil: una falla no cancela el resto del lote
			return nil
		})
	}
	_ = g.Wait()

	out := &BatchError{Attempted: len(picked)}
	for _, f := range failures {
		if f != nil {
			out.Failures = append(out.Failures, *f)
		}
	}
	return out
}

func (c *PackList) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = ModeNone
	c.selected = packs.Pack{}
	c.draft = PackDraft{}
}

func (c *PackList) View() PackView {
	c.mu.Lock()
	defer c.mu.Unlock()

	sel := c.selected
	sel.Wolves = slices.Clone(sel.Wolves)
	return PackView{
		Loading:  c.loading,
		Items:    slices.Clone(c.items),
		Mode:     c.mode,
		Selected: sel,
		Draft:    c.draft,
		Err:      c.err,
	}
}

func (c *PackList) persistedSelection() (packs.Pack, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeNone {
		return packs.Pack{}, ErrNothingSelected
	}
	if !c.selected.Persisted() {
		return packs.Pack{}, ErrNotPersisted
	}
	p := c.selected
	p.Wolves = slices.Clone(p.Wolves)
	return p, nil
}

func (c *PackList) nameOf(ctx context.Context, id int) (string, error) {
	c.mu.Lock()
	if c.selected.ID == id && c.selected.Persisted() {
		name := c.selected.Name
		c.mu.Unlock()
		return name, nil
	}
	for _, p := range c.items {
		if p.ID == id {
			c.mu.Unlock()
			return p.Name, nil
		}
	}
	c.mu.Unlock()

	p, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

func (c *PackList) fail(op string, err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
	c.deps.failure(op, err)
}
