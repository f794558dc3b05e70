package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"wolfpack/internal/domain/wolves"
	"wolfpack/internal/ports/dialog"
	"wolfpack/internal/ports/nav"
)

// WolfDraft son los campos editables del formulario de lobo.
type WolfDraft struct {
	Name     string
	Gender   wolves.Gender
	Birthday time.Time
}

func wolfDraftFrom(w wolves.Wolf) WolfDraft {
	return WolfDraft{Name: w.Name, Gender: w.Gender, Birthday: w.Birthday}
}

func (d WolfDraft) applyTo(w wolves.Wolf) wolves.Wolf {
	w.Name = d.Name
	w.Gender = d.Gender
	w.Birthday = d.Birthday
	return w
}

// WolfView es una copia del estado para renderizar.
type WolfView struct {
	Loading  bool
	Items    []wolves.Wolf
	Mode     Mode
	Selected wolves.Wolf
	Draft    WolfDraft
	Err      error
}

type WolfList struct {
	repo wolves.Repository
	deps Deps

	mu       sync.Mutex
	loading  bool
	items    []wolves.Wolf
	mode     Mode
	selected wolves.Wolf
	draft    WolfDraft
	err      error
}

func NewWolfList(repo wolves.Repository, deps Deps) *WolfList {
	return &WolfList{
		repo:    repo,
		deps:    deps.withDefaults(),
		loading: true,
	}
}

// Open carga la lista y, si la ruta trae un id, lo selecciona.
func (c *WolfList) Open(ctx context.Context, route nav.Route) error {
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

func (c *WolfList) Load(ctx context.Context) error {
	items, err := c.repo.List(ctx)
	if err != nil {
		c.fail("list wolves", err)
		return err
	}
	sortByName(items, func(w wolves.Wolf) string { return w.Name })

	c.mu.Lock()
	c.items = items
	c.loading = false
	c.err = nil
	c.mu.Unlock()
	return nil
}

// Select trae el lobo del servidor y pisa cualquier edición sin guardar.
func (c *WolfList) Select(ctx context.Context, id int) error {
	w, err := c.repo.GetByID(ctx, id)
	if err != nil {
		c.fail("get wolf", err)
		return err
	}

	c.mu.Lock()
	c.mode = ModeViewing
	c.selected = w
	c.draft = wolfDraftFrom(w)
	c.err = nil
	c.mu.Unlock()
	return nil
}

func (c *WolfList) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = ModeCreating
	c.selected = wolves.Wolf{}
	c.draft = WolfDraft{}
}

// Edit modifica el formulario; Viewing pasa a Editing.
func (c *WolfList) Edit(fn func(d *WolfDraft)) error {
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

// Save crea o actualiza según el sub-estado y después reconcilia con el servidor.
// Devuelve el id guardado.
func (c *WolfList) Save(ctx context.Context) (int, error) {
	c.mu.Lock()
	mode, selected, draft := c.mode, c.selected, c.draft
	c.mu.Unlock()

	switch mode {
	case ModeNone:
		return 0, ErrNothingSelected

	case ModeCreating:
		w := draft.applyTo(wolves.Wolf{})
		if err := wolves.Validate(w, c.deps.Now); err != nil {
			c.fail("validate wolf", err)
			return 0, err
		}
		id, err := c.repo.Create(ctx, w)
		if err != nil {
			c.fail("create wolf", err)
			return 0, err
		}
		c.deps.success(msgCreatedWolf)

		// los errores de la reconciliación ya se notificaron
		_ = c.Load(ctx)
		_ = c.Select(ctx, id)
		return id, nil

	default:
		if !selected.Persisted() {
			return 0, ErrNotPersisted
		}
		w := draft.applyTo(selected)
		if err := wolves.Validate(w, c.deps.Now); err != nil {
			c.fail("validate wolf", err)
			return 0, err
		}
		if err := c.repo.Update(ctx, w); err != nil {
			c.fail("update wolf", err)
			return 0, err
		}
		c.deps.success(msgUpdated)

		_ = c.Load(ctx)
		_ = c.Select(ctx, w.ID)
		return w.ID, nil
	}
}

// Delete pide confirmación; deleted=false sin error significa que el usuario canceló.
func (c *WolfList) Delete(ctx context.Context, id int) (bool, error) {
	name, err := c.nameOf(ctx, id)
	if err != nil {
		c.fail("get wolf", err)
		return false, err
	}

	ok, err := c.deps.Confirmer.Confirm(ctx, dialog.Prompt{
		Title: "Delete wolf",
		Text:  fmt.Sprintf(`Are you sure you want to permanently remove the wolf "%s"?`, name),
	})
	if err != nil || !ok {
		return false, err
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		c.fail("delete wolf", err)
		return false, err
	}
	c.deps.success(msgDeleted)

	_ = c.Load(ctx)
	c.Close()
	return true, nil
}

// Close descarta la selección.
func (c *WolfList) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = ModeNone
	c.selected = wolves.Wolf{}
	c.draft = WolfDraft{}
}

func (c *WolfList) View() WolfView {
	c.mu.Lock()
	defer c.mu.Unlock()

	return WolfView{
		Loading:  c.loading,
		Items:    slices.Clone(c.items),
		Mode:     c.mode,
		Selected: c.selected,
		Draft:    c.draft,
		Err:      c.err,
	}
}

func (c *WolfList) nameOf(ctx context.Context, id int) (string, error) {
	c.mu.Lock()
	if c.selected.ID == id && c.selected.Persisted() {
		name := c.selected.Name
		c.mu.Unlock()
		return name, nil
	}
	for _, w := range c.items {
		if w.ID == id {
			c.mu.Unlock()
			return w.Name, nil
		}
	}
	c.mu.Unlock()

	w, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return w.Name, nil
}

func (c *WolfList) fail(op string, err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
	c.deps.failure(op, err)
}
