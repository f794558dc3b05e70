package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
	"wolfpack/internal/wire"

	"github.com/go-chi/chi/v5"
)

func registerPackRoutes(r chi.Router, svc *packs.Service) {
	r.Route("/packs", func(pr chi.Router) {
		pr.Get("/", listPacksHandler(svc))
		pr.Post("/", createPackHandler(svc))

		pr.Get("/{packID}", getPackHandler(svc))
		pr.Put("/{packID}", updatePackHandler(svc))
		pr.Delete("/{packID}", deletePackHandler(svc))

		// Membresía
		pr.Post("/{packID}/wolf/{wolfID}", addMemberHandler(svc))
		pr.Delete("/{packID}/wolf/{wolfID}", removeMemberHandler(svc))
	})
}

// listPacksHandler godoc
// @Summary Listar manadas (sin miembros)
// @Tags packs
// @Produce json
// @Success 200 {array} wire.PackRecord
// @Router /packs [get]
func listPacksHandler(svc *packs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]wire.PackRecord, 0, len(items))
		for _, it := range items {
			out = append(out, wire.FromPack(it, false))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPackHandler godoc
// @Summary Obtener una manada con sus miembros
// @Tags packs
// @Produce json
// @Param packID path int true "ID de la manada"
// @Success 200 {object} wire.PackRecord
// @Failure 404 {string} string "pack not found"
// @Router /packs/{packID} [get]
func getPackHandler(svc *packs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(w, r, "packID", "pack not found")
		if !ok {
			return
		}
		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writePackError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, wire.FromPack(p, true))
	}
}

// createPackHandler godoc
// @Summary Crear manada
// @Tags packs
// @Accept json
// @Produce json
// @Param payload body wire.PackPayload true "Datos de la manada"
// @Success 201 {object} wire.CreatedResponse
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Router /packs [post]
func createPackHandler(svc *packs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req wire.PackPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		id, err := svc.Create(r.Context(), wire.PackFromPayload(req))
		if err != nil {
			writePackError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, wire.CreatedResponse{ID: id})
	}
}

// updatePackHandler godoc
// @Summary Actualizar manada (nombre y ubicación)
// @Tags packs
// @Accept json
// @Param packID path int true "ID de la manada"
// @Param payload body wire.PackPayload true "Datos de la manada"
// @Success 204
// @Failure 404 {string} string "pack not found"
// @Router /packs/{packID} [put]
func updatePackHandler(svc *packs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(w, r, "packID", "pack not found")
		if !ok {
			return
		}
		var req wire.PackPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		p := wire.PackFromPayload(req)
		p.ID = id
		if err := svc.Update(r.Context(), p); err != nil {
			writePackError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// deletePackHandler godoc
// @Summary Eliminar manada
// @Tags packs
// @Param packID path int true "ID de la manada"
// @Success 204
// @Failure 404 {string} string "pack not found"
// @Router /packs/{packID} [delete]
func deletePackHandler(svc *packs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(w, r, "packID", "pack not found")
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writePackError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// addMemberHandler godoc
// @Summary Agregar lobo a la manada
// @Tags packs
// @Param packID path int true "ID de la manada"
// @Param wolfID path int true "ID del lobo"
// @Success 204
// @Failure 404 {string} string "pack not found / wolf not found"
// @Failure 409 {string} string "wolf already in pack"
// @Router /packs/{packID}/wolf/{wolfID} [post]
func addMemberHandler(svc *packs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packID, wolfID, ok := memberParams(w, r)
		if !ok {
			return
		}
		if err := svc.AddMember(r.Context(), packID, wolfID); err != nil {
			writePackError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// removeMemberHandler godoc
// @Summary Quitar lobo de la manada (el lobo no se borra)
// @Tags packs
// @Param packID path int true "ID de la manada"
// @Param wolfID path int true "ID del lobo"
// @Success 204
// @Failure 404 {string} string "pack not found / wolf not in pack"
// @Router /packs/{packID}/wolf/{wolfID} [delete]
func removeMemberHandler(svc *packs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packID, wolfID, ok := memberParams(w, r)
		if !ok {
			return
		}
		if err := svc.RemoveMember(r.Context(), packID, wolfID); err != nil {
			writePackError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func memberParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	packID, ok := intParam(w, r, "packID", "pack not found")
	if !ok {
		return 0, 0, false
	}
	wolfID, ok := intParam(w, r, "wolfID", "wolf not found")
	if !ok {
		return 0, 0, false
	}
	return packID, wolfID, true
}

func intParam(w http.ResponseWriter, r *http.Request, name, notFound string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		http.Error(w, notFound, http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func writePackError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, packs.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, packs.ErrNotFound):
		http.Error(w, "pack not found", http.StatusNotFound)
	case errors.Is(err, wolves.ErrNotFound):
		http.Error(w, "wolf not found", http.StatusNotFound)
	case errors.Is(err, packs.ErrNotMember):
		http.Error(w, "wolf not in pack", http.StatusNotFound)
	case errors.Is(err, packs.ErrAlreadyMember):
		http.Error(w, "wolf already in pack", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
