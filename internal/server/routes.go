// Package server contiene los handlers HTTP del servidor de desarrollo (wolfapi).
package server

import (
	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /wolves y /packs sobre r.
func RegisterRoutes(r chi.Router, wolvesSvc *wolves.Service, packsSvc *packs.Service) {
	registerWolfRoutes(r, wolvesSvc)
	registerPackRoutes(r, packsSvc)
}
