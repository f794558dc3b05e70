package packs

import (
	"context"
	"errors"
	"time"

	"wolfpack/internal/domain/wolves"
)

var (
	ErrNotFound      = errors.New("pack not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyMember = errors.New("wolf already in pack")
	ErrNotMember     = errors.New("wolf not in pack")
)

// Repository es el contrato que consumen los controllers.
// List nunca carga miembros; GetByID sí.
type Repository interface {
	List(ctx context.Context) ([]Pack, error)
	GetByID(ctx context.Context, id int) (Pack, error)
	Create(ctx context.Context, p Pack) (int, error)
	Update(ctx context.Context, p Pack) error
	Delete(ctx context.Context, id int) error

	AddMember(ctx context.Context, packID, wolfID int) error
	RemoveMember(ctx context.Context, packID, wolfID int) error
}

// Store es la persistencia del servidor de desarrollo.
// Get devuelve la manada con Wolves cargado (ordenado por fecha de alta en la manada).
type Store interface {
	List(ctx context.Context) ([]Pack, error)
	Get(ctx context.Context, id int) (Pack, error)
	Insert(ctx context.Context, p Pack) (int, error)
	Update(ctx context.Context, p Pack) error
	Delete(ctx context.Context, id int) error

	AddMember(ctx context.Context, packID, wolfID int, at time.Time) error
	RemoveMember(ctx context.Context, packID, wolfID int) error
}

// WolfLookup evita depender del Service de wolves (solo necesitamos existencia).
type WolfLookup interface {
	GetByID(ctx context.Context, id int) (wolves.Wolf, error)
}
