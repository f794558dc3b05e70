package nav

import (
	"strconv"
	"strings"
)

// Route es lo que el colaborador de routing expone: un id opcional de entidad.
type Route interface {
	EntityID() (int, bool)
}

// Path es una ruta de navegación del estilo "/packs/12".
type Path string

// EntityID toma el último segmento si es un entero positivo.
func (p Path) EntityID() (int, bool) {
	s := strings.Trim(strings.TrimSpace(string(p)), "/")
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, "/")
	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ID es una ruta con id explícito (0 = sin id).
type ID int

func (i ID) EntityID() (int, bool) {
	return int(i), i > 0
}
