package packs

import "wolfpack/internal/validation"

// Validate aplica las reglas de formulario de una manada (solo el nombre).
func Validate(p Pack) error {
	return validation.NewForm().
		String("name", p.Name, validation.NameRules...).
		Err()
}
