package wolves

import (
	"strings"
	"time"
)

// Gender define el sexo del lobo.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Genders lista los valores válidos (orden estable para formularios).
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// ParseGender normaliza el texto recibido. ok=false si no es un valor soportado.
func ParseGender(s string) (Gender, bool) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	default:
		return "", false
	}
}

func (g Gender) Valid() bool {
	_, ok := ParseGender(string(g))
	return ok
}

// Wolf representa un lobo registrado.
// ID == 0 significa "todavía no guardado"; CreatedAt/UpdatedAt los asigna el servidor.
type Wolf struct {
	ID int

	Name     string
	Gender   Gender
	Birthday time.Time // solo fecha

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w Wolf) Persisted() bool {
	return w.ID > 0
}
