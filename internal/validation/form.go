package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Error es el ValidationError: nunca llega a la red.
type Error struct {
	Fields map[string][]Violation
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		vs := make([]string, 0, len(e.Fields[k]))
		for _, v := range e.Fields[k] {
			vs = append(vs, string(v))
		}
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(vs, ",")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has indica si el campo tiene esa violación.
func (e *Error) Has(field string, v Violation) bool {
	for _, got := range e.Fields[field] {
		if got == v {
			return true
		}
	}
	return false
}

// Form acumula violaciones por campo. El formulario se puede enviar solo si Valid().
type Form struct {
	errs map[string][]Violation
}

func NewForm() *Form {
	return &Form{errs: map[string][]Violation{}}
}

func (f *Form) String(field, value string, rules ...StringRule) *Form {
	for _, r := range rules {
		if v := r(value); v != Valid {
			f.add(field, v)
		}
	}
	return f
}

func (f *Form) Date(field string, value time.Time, rules ...DateRule) *Form {
	for _, r := range rules {
		if v := r(value); v != Valid {
			f.add(field, v)
		}
	}
	return f
}

func (f *Form) Valid() bool {
	return len(f.errs) == 0
}

// Err devuelve nil o *Error.
func (f *Form) Err() error {
	if f.Valid() {
		return nil
	}
	out := make(map[string][]Violation, len(f.errs))
	for k, v := range f.errs {
		out[k] = append([]Violation(nil), v...)
	}
	return &Error{Fields: out}
}

func (f *Form) add(field string, v Violation) {
	if f.errs == nil {
		f.errs = map[string][]Violation{}
	}
	f.errs[field] = append(f.errs[field], v)
}
