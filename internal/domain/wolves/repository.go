package wolves

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("wolf not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Repository es el contrato CRUD que consumen los controllers.
// Lo implementan el cliente HTTP (adapters/api) y el Service del servidor de desarrollo.
type Repository interface {
	List(ctx context.Context) ([]Wolf, error)
	GetByID(ctx context.Context, id int) (Wolf, error)
	Create(ctx context.Context, w Wolf) (int, error)
	Update(ctx context.Context, w Wolf) error
	Delete(ctx context.Context, id int) error
}

// Store es la persistencia del servidor de desarrollo (memory, postgres, sqlite).
type Store interface {
	List(ctx context.Context) ([]Wolf, error)
	Get(ctx context.Context, id int) (Wolf, error)
	Insert(ctx context.Context, w Wolf) (int, error)
	Update(ctx context.Context, w Wolf) error
	Delete(ctx context.Context, id int) error
}
