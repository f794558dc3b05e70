// Package dialog define los diálogos modales como contrato request/response:
// el controller emite el prompt y espera una decisión tipada.
package dialog

import (
	"context"

	"wolfpack/internal/domain/wolves"
)

type Prompt struct {
	Title string
	Text  string
}

// Confirmer resuelve un sí/no. Cancelar equivale a false.
type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) (bool, error)
}

// PickRequest lleva los candidatos ya filtrados (sin los miembros actuales).
type PickRequest struct {
	Title      string
	Candidates []wolves.Wolf
}

// WolfPicker devuelve los lobos elegidos. nil o vacío = nada que hacer.
type WolfPicker interface {
	PickWolves(ctx context.Context, req PickRequest) ([]wolves.Wolf, error)
}

// Always contesta siempre lo mismo (modo no interactivo, --yes).
type Always bool

func (a Always) Confirm(_ context.Context, _ Prompt) (bool, error) {
	return bool(a), nil
}

// Preselected elige por id entre los candidatos ofrecidos.
// Ids que no están entre los candidatos se ignoran.
type Preselected []int

func (p Preselected) PickWolves(_ context.Context, req PickRequest) ([]wolves.Wolf, error) {
	want := make(map[int]struct{}, len(p))
	for _, id := range p {
		want[id] = struct{}{}
	}

	out := make([]wolves.Wolf, 0, len(p))
	for _, w := range req.Candidates {
		if _, ok := want[w.ID]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}
