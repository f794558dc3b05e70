package wolves

import (
	"time"

	"wolfpack/internal/validation"
)

// Validate aplica las reglas de formulario de un lobo.
// Devuelve nil o *validation.Error.
func Validate(w Wolf, now func() time.Time) error {
	genders := make([]string, 0, 2)
	for _, g := range Genders() {
		genders = append(genders, string(g))
	}

	return validation.NewForm().
		String("name", w.Name, validation.NameRules...).
		String("gender", string(w.Gender), validation.NotEmpty, validation.OneOf(genders...)).
		Date("birthday", w.Birthday, validation.DateSet, validation.NotAfterToday(now)).
		Err()
}
