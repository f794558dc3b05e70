package controller

import (
	"fmt"
	"strings"

	"wolfpack/internal/platform/httpclient"
)

// MemberFailure es un alta de membresía que falló dentro de un lote.
type MemberFailure struct {
	WolfID   int
	WolfName string
	Err      error
}

func (f MemberFailure) Error() string {
	return fmt.Sprintf("add wolf %q (%d): %s", f.WolfName, f.WolfID, httpclient.UserMessage(f.Err))
}

func (f MemberFailure) Unwrap() error {
	return f.Err
}

// BatchError es el resultado de un lote con fallas parciales.
// Attempted cuenta intentos (éxitos + fallas), no solo éxitos.
type BatchError struct {
	Attempted int
	Failures  []MemberFailure
}

func (e *BatchError) Error() string {
	names := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		names = append(names, f.WolfName)
	}
	return fmt.Sprintf("add members: %d of %d failed: %s",
		len(e.Failures), e.Attempted, strings.Join(names, ", "))
}

func (e *BatchError) Unwrap() []error {
	out := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		out = append(out, f)
	}
	return out
}

// Summary es el texto para el usuario: cuántos lobos no entraron.
func (e *BatchError) Summary() string {
	noun := "wolf"
	if e.Attempted > 1 {
		noun = "wolves"
	}
	return fmt.Sprintf("%d of %d %s could not be added to the pack", len(e.Failures), e.Attempted, noun)
}

// Succeeded es la cantidad de altas que sí llegaron al servidor.
func (e *BatchError) Succeeded() int {
	return e.Attempted - len(e.Failures)
}
