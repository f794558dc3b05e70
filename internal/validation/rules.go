// Package validation contiene las reglas de formulario que se evalúan antes de
// cualquier llamada mutante. Son funciones puras: no hacen I/O y no guardan estado.
package validation

import (
	"strings"
	"time"
)

// Violation es el nombre de la regla que falló. "" significa válido.
type Violation string

const (
	Valid        Violation = ""
	Required     Violation = "required"
	Whitespace   Violation = "whitespace"
	OnlyLetters  Violation = "onlyLetters"
	InvalidValue Violation = "invalidOption"
	DateInFuture Violation = "dateInPastOrToday"
	DateInPast   Violation = "dateIsInFutureOrToday"
)

type StringRule func(s string) Violation

type DateRule func(d time.Time) Violation

// NonEmpty falla si el valor queda vacío después de recortar espacios.
func NonEmpty(s string) Violation {
	if strings.TrimSpace(s) == "" {
		return Whitespace
	}
	return Valid
}

// LettersOnly acepta solo letras ASCII. La cadena vacía pasa: combinar con NonEmpty.
func LettersOnly(s string) Violation {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return OnlyLetters
	}
	return Valid
}

// NotEmpty falla solo con la cadena vacía (equivale a un "required" de formulario).
func NotEmpty(s string) Violation {
	if s == "" {
		return Required
	}
	return Valid
}

// OneOf restringe el valor a un conjunto cerrado.
func OneOf(allowed ...string) StringRule {
	return func(s string) Violation {
		for _, a := range allowed {
			if s == a {
				return Valid
			}
		}
		return InvalidValue
	}
}

// NameRules son las reglas de nombre para lobos y manadas.
var NameRules = []StringRule{NonEmpty, LettersOnly}

// DateSet falla con la fecha cero.
func DateSet(d time.Time) Violation {
	if d.IsZero() {
		return Required
	}
	return Valid
}

// NotAfterToday falla si la fecha es estrictamente posterior al momento actual.
// La fecha se interpreta en el calendario de now (un cumpleaños "hoy" siempre pasa).
func NotAfterToday(now func() time.Time) DateRule {
	return func(d time.Time) Violation {
		if d.IsZero() {
			return Valid
		}
		n := now()
		if calendarDay(d, n.Location()).After(n) {
			return DateInFuture
		}
		return Valid
	}
}

// NotBeforeToday falla si la fecha es anterior a la medianoche del día actual.
func NotBeforeToday(now func() time.Time) DateRule {
	return func(d time.Time) Violation {
		if d.IsZero() {
			return Valid
		}
		n := now()
		midnight := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
		if calendarDay(d, n.Location()).Before(midnight) {
			return DateInPast
		}
		return Valid
	}
}

func calendarDay(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}
