package wire

import (
	"fmt"
	"time"

	"wolfpack/internal/domain/packs"
)

// PackRecord es una manada tal como la devuelve la API.
// Wolves es nil en el listado (el campo no viene) y no-nil en GET /packs/{id}.
type PackRecord struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Lat       float64       `json:"lat"`
	Lng       float64       `json:"lng"`
	CreatedAt *time.Time    `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at"`
	Wolves    *[]WolfRecord `json:"wolves,omitempty"`
}

// PackPayload es el cuerpo de POST/PUT /packs.
type PackPayload struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

func ToPack(r PackRecord) (packs.Pack, error) {
	p := packs.Pack{
		ID:        r.ID,
		Name:      r.Name,
		Latitude:  r.Lat,
		Longitude: r.Lng,
		CreatedAt: timeOrZero(r.CreatedAt),
		UpdatedAt: timeOrZero(r.UpdatedAt),
	}
	if r.Wolves == nil {
		return p, nil
	}

	members, err := ToWolves(*r.Wolves)
	if err != nil {
		return packs.Pack{}, fmt.Errorf("pack %d: %w", r.ID, err)
	}
	p.Wolves = packs.UniqueMembers(members)
	p.WolvesLoaded = true
	return p, nil
}

// ToPacks mapea el listado; los miembros se ignoran aunque vinieran.
func ToPacks(in []PackRecord) ([]packs.Pack, error) {
	out := make([]packs.Pack, 0, len(in))
	for _, r := range in {
		r.Wolves = nil
		p, err := ToPack(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// FromPack arma el registro; withWolves controla si se incluye el campo wolves.
func FromPack(p packs.Pack, withWolves bool) PackRecord {
	r := PackRecord{
		ID:        p.ID,
		Name:      p.Name,
		Lat:       p.Latitude,
		Lng:       p.Longitude,
		CreatedAt: timePtr(p.CreatedAt),
		UpdatedAt: timePtr(p.UpdatedAt),
	}
	if withWolves {
		members := make([]WolfRecord, 0, len(p.Wolves))
		for _, w := range packs.UniqueMembers(p.Wolves) {
			members = append(members, FromWolf(w))
		}
		r.Wolves = &members
	}
	return r
}

func NewPackPayload(p packs.Pack) PackPayload {
	return PackPayload{
		Name: p.Name,
		Lat:  p.Latitude,
		Lng:  p.Longitude,
	}
}

func PackFromPayload(in PackPayload) packs.Pack {
	return packs.Pack{
		Name:      in.Name,
		Latitude:  in.Lat,
		Longitude: in.Lng,
	}
}
