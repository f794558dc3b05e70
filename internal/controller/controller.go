// Package controller contiene los controllers master-detail (Dashboard, WolfList, PackList).
//
// Cada controller es dueño de su snapshot local; después de cada escritura vuelve a pedir
// el estado al servidor en vez de parchear la lista. El mutex protege el estado pero no se
// mantiene durante llamadas de red: dos requests en vuelo sobre la misma entidad se resuelven
// por "gana la última respuesta".
package controller

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"time"

	"wolfpack/internal/platform/httpclient"
	"wolfpack/internal/platform/logger"
	"wolfpack/internal/ports/dialog"
	"wolfpack/internal/ports/geo"
	"wolfpack/internal/ports/notify"
	"wolfpack/internal/validation"
)

var (
	ErrNothingSelected = errors.New("nothing selected")
	ErrNotPersisted    = errors.New("entity not persisted")
)

// Textos que ve el usuario.
const (
	msgInvalidForm   = "Not all fields have been filled in correctly"
	msgUpdated       = "Successfully updated"
	msgDeleted       = "Successfully deleted"
	msgCreatedWolf   = "Successfully created wolf"
	msgCreatedPack   = "Successfully created pack"
	msgRemovedMember = "Successfully removed wolf from the pack"
)

// Mode es el sub-estado de selección.
type Mode int

const (
	ModeNone Mode = iota
	ModeViewing
	ModeCreating
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeViewing:
		return "viewing"
	case ModeCreating:
		return "creating"
	case ModeEditing:
		return "editing"
	default:
		return "none"
	}
}

// Deps son los colaboradores externos. Los nil se reemplazan por implementaciones inertes.
type Deps struct {
	Notifier  notify.Notifier
	Confirmer dialog.Confirmer
	Picker    dialog.WolfPicker
	Locator   geo.Locator
	Log       logger.Logger

	NotifyDuration time.Duration
	RecentCount    int

	Now func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Notifier == nil {
		d.Notifier = &notify.Recorder{}
	}
	if d.Confirmer == nil {
		// sin diálogo no se confirma nada destructivo
		d.Confirmer = dialog.Always(false)
	}
	if d.Picker == nil {
		d.Picker = dialog.Preselected(nil)
	}
	if d.Locator == nil {
		d.Locator = geo.Fixed{}
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.NotifyDuration <= 0 {
		d.NotifyDuration = 1500 * time.Millisecond
	}
	if d.RecentCount <= 0 {
		d.RecentCount = 5
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

func (d Deps) success(text string) {
	d.Notifier.Notify(notify.Message{Level: notify.LevelSuccess, Text: text, Duration: d.NotifyDuration})
}

// failure muestra el error (el mensaje del servidor tal cual) y lo registra.
func (d Deps) failure(op string, err error) {
	text := httpclient.UserMessage(err)
	var verr *validation.Error
	if errors.As(err, &verr) {
		text = msgInvalidForm
	}
	d.Notifier.Notify(notify.Message{Level: notify.LevelError, Text: text, Duration: d.NotifyDuration})
	d.Log.Warn("operation failed", map[string]any{"op": op, "err": err})
}

// sortByName ordena ascendente por nombre (comparación de bytes, sensible a mayúsculas).
// Es estable: empates conservan el orden del servidor.
func sortByName[T any](items []T, name func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int {
		return strings.Compare(name(a), name(b))
	})
}

// recent ordena por updatedAt descendente y trunca a n.
func recent[T any](items []T, updated func(T) time.Time, n int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(updated(b).UnixNano(), updated(a).UnixNano())
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
