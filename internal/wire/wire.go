// Package wire traduce entre el formato JSON de la API (snake_case, lat/lng,
// fechas yyyy-MM-dd) y las entidades en memoria.
package wire

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout es el formato de fechas que se envía al servidor (yyyy-MM-dd).
const DateLayout = "2006-01-02"

// CreatedResponse es la respuesta de un POST de creación.
type CreatedResponse struct {
	ID int `json:"id"`
}

// FormatDate devuelve "" para la fecha cero.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate acepta yyyy-MM-dd o un timestamp RFC3339 (se queda con el día).
// El resultado es medianoche UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("wire: date %q must be yyyy-MM-dd", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
