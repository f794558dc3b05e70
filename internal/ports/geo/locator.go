package geo

import "context"

type Point struct {
	Latitude  float64
	Longitude float64
}

// Locator entrega la ubicación actual (equivalente a la geolocalización del navegador).
type Locator interface {
	Locate(ctx context.Context) (Point, error)
}

// Fixed devuelve siempre el mismo punto (p.ej. la "home" configurada).
type Fixed Point

func (f Fixed) Locate(_ context.Context) (Point, error) {
	return Point(f), nil
}
