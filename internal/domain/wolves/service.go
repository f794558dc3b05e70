package wolves

import (
	"context"
	"fmt"
	"time"
)

// Service es el caso de uso del lado servidor (wolfapi). Asigna timestamps y valida.
// Implementa Repository, así los controllers también pueden correr en proceso.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

var _ Repository = (*Service)(nil)

func (s *Service) List(ctx context.Context) ([]Wolf, error) {
	return s.store.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (Wolf, error) {
	if id <= 0 {
		return Wolf{}, ErrNotFound
	}
	return s.store.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, w Wolf) (int, error) {
	if err := Validate(w, s.now); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now().UTC()
	w.ID = 0
	w.CreatedAt = now
	w.UpdatedAt = now
	return s.store.Insert(ctx, w)
}

func (s *Service) Update(ctx context.Context, w Wolf) error {
	if err := Validate(w, s.now); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	current, err := s.GetByID(ctx, w.ID)
	if err != nil {
		return err
	}
	w.CreatedAt = current.CreatedAt
	w.UpdatedAt = s.now().UTC()
	return s.store.Update(ctx, w)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.store.Delete(ctx, id)
}
