package wire

import (
	"fmt"
	"strings"
	"time"

	"wolfpack/internal/domain/wolves"
)

// WolfRecord es un lobo tal como lo devuelve la API.
type WolfRecord struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Gender    string     `json:"gender"`
	Birthday  string     `json:"birthday"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// WolfPayload es el cuerpo de POST/PUT /wolves.
type WolfPayload struct {
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Birthday string `json:"birthday"` // yyyy-MM-dd
}

func ToWolf(r WolfRecord) (wolves.Wolf, error) {
	bd, err := ParseDate(r.Birthday)
	if err != nil {
		return wolves.Wolf{}, fmt.Errorf("wolf %d: %w", r.ID, err)
	}

	// Un género desconocido se conserva tal cual: el servidor manda.
	g := wolves.Gender(strings.TrimSpace(r.Gender))
	if parsed, ok := wolves.ParseGender(r.Gender); ok {
		g = parsed
	}

	return wolves.Wolf{
		ID:        r.ID,
		Name:      r.Name,
		Gender:    g,
		Birthday:  bd,
		CreatedAt: timeOrZero(r.CreatedAt),
		UpdatedAt: timeOrZero(r.UpdatedAt),
	}, nil
}

func ToWolves(in []WolfRecord) ([]wolves.Wolf, error) {
	out := make([]wolves.Wolf, 0, len(in))
	for _, r := range in {
		w, err := ToWolf(r)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func FromWolf(w wolves.Wolf) WolfRecord {
	return WolfRecord{
		ID:        w.ID,
		Name:      w.Name,
		Gender:    string(w.Gender),
		Birthday:  FormatDate(w.Birthday),
		CreatedAt: timePtr(w.CreatedAt),
		UpdatedAt: timePtr(w.UpdatedAt),
	}
}

func NewWolfPayload(w wolves.Wolf) WolfPayload {
	return WolfPayload{
		Name:     w.Name,
		Gender:   string(w.Gender),
		Birthday: FormatDate(w.Birthday),
	}
}

// WolfFromPayload se usa del lado servidor. No valida reglas de negocio.
func WolfFromPayload(p WolfPayload) (wolves.Wolf, error) {
	bd, err := ParseDate(p.Birthday)
	if err != nil {
		return wolves.Wolf{}, err
	}
	g := wolves.Gender(strings.TrimSpace(p.Gender))
	if parsed, ok := wolves.ParseGender(p.Gender); ok {
		g = parsed
	}
	return wolves.Wolf{
		Name:     p.Name,
		Gender:   g,
		Birthday: bd,
	}, nil
}
