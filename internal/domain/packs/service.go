package packs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wolfpack/internal/domain/wolves"
)

type Service struct {
	store  Store
	wolves WolfLookup
	now    func() time.Time
}

func NewService(store Store, lookup WolfLookup) *Service {
	return &Service{
		store:  store,
		wolves: lookup,
		now:    time.Now,
	}
}

var _ Repository = (*Service)(nil)

func (s *Service) List(ctx context.Context) ([]Pack, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	// El listado nunca expone miembros.
	for i := range items {
		items[i].Wolves = nil
		items[i].WolvesLoaded = false
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (Pack, error) {
	if id <= 0 {
		return Pack{}, ErrNotFound
	}
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return Pack{}, err
	}
	p.Wolves = UniqueMembers(p.Wolves)
	p.WolvesLoaded = true
	return p, nil
}

func (s *Service) Create(ctx context.Context, p Pack) (int, error) {
	if err := Validate(p); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now().UTC()
	p.ID = 0
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Wolves = nil
	p.WolvesLoaded = false
	return s.store.Insert(ctx, p)
}

// Update reemplaza nombre y ubicación; la membresía no se toca.
func (s *Service) Update(ctx context.Context, p Pack) error {
	if err := Validate(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	current, err := s.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = s.now().UTC()
	return s.store.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.store.Delete(ctx, id)
}

// AddMember agrega un lobo existente. Un lobo ya presente devuelve ErrAlreadyMember.
func (s *Service) AddMember(ctx context.Context, packID, wolfID int) error {
	p, err := s.GetByID(ctx, packID)
	if err != nil {
		return err
	}
	if wolfID <= 0 {
		return wolves.ErrNotFound
	}
	if _, err := s.wolves.GetByID(ctx, wolfID); err != nil {
		return err
	}
	if p.HasMember(wolfID) {
		return ErrAlreadyMember
	}

	err = s.store.AddMember(ctx, packID, wolfID, s.now().UTC())
	if errors.Is(err, ErrAlreadyMember) {
		// carrera entre dos POST iguales: el store es la última palabra
		return ErrAlreadyMember
	}
	return err
}

func (s *Service) RemoveMember(ctx context.Context, packID, wolfID int) error {
	p, err := s.GetByID(ctx, packID)
	if err != nil {
		return err
	}
	if !p.HasMember(wolfID) {
		return ErrNotMember
	}
	return s.store.RemoveMember(ctx, packID, wolfID)
}
