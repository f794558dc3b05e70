package packs

import (
	"time"

	"wolfpack/internal/domain/wolves"
)

// Pack representa una manada con su ubicación.
type Pack struct {
	ID int

	Name      string
	Latitude  float64
	Longitude float64

	CreatedAt time.Time
	UpdatedAt time.Time

	// Wolves solo viene cargado al pedir la manada por id.
	// WolvesLoaded distingue "no vino" de "vino vacío".
	Wolves       []wolves.Wolf
	WolvesLoaded bool
}

func (p Pack) Persisted() bool {
	return p.ID > 0
}

// HasMember indica si el lobo ya está en la manada (solo si la membresía está cargada).
func (p Pack) HasMember(wolfID int) bool {
	for _, w := range p.Wolves {
		if w.ID == wolfID {
			return true
		}
	}
	return false
}

// Member devuelve el lobo miembro con ese id.
func (p Pack) Member(wolfID int) (wolves.Wolf, bool) {
	for _, w := range p.Wolves {
		if w.ID == wolfID {
			return w, true
		}
	}
	return wolves.Wolf{}, false
}

// UniqueMembers elimina ids repetidos conservando el primer lugar.
func UniqueMembers(in []wolves.Wolf) []wolves.Wolf {
	seen := make(map[int]struct{}, len(in))
	out := make([]wolves.Wolf, 0, len(in))
	for _, w := range in {
		if _, ok := seen[w.ID]; ok {
			continue
		}
		seen[w.ID] = struct{}{}
		out = append(out, w)
	}
	return out
}
