package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"wolfpack/internal/domain/wolves"
	"wolfpack/internal/wire"

	"github.com/go-chi/chi/v5"
)

func registerWolfRoutes(r chi.Router, svc *wolves.Service) {
	r.Route("/wolves", func(wr chi.Router) {
		wr.Get("/", listWolvesHandler(svc))
		wr.Post("/", createWolfHandler(svc))

		wr.Get("/{wolfID}", getWolfHandler(svc))
		wr.Put("/{wolfID}", updateWolfHandler(svc))
		wr.Delete("/{wolfID}", deleteWolfHandler(svc))
	})
}

// listWolvesHandler godoc
// @Summary Listar lobos
// @Tags wolves
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {array} wire.WolfRecord
// @Failure 401 {string} string "unauthorized"
// @Router /wolves [get]
func listWolvesHandler(svc *wolves.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]wire.WolfRecord, 0, len(items))
		for _, it := range items {
			out = append(out, wire.FromWolf(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getWolfHandler godoc
// @Summary Obtener un lobo
// @Tags wolves
// @Produce json
// @Param wolfID path int true "ID del lobo"
// @Success 200 {object} wire.WolfRecord
// @Failure 404 {string} string "wolf not found"
// @Router /wolves/{wolfID} [get]
func getWolfHandler(svc *wolves.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(w, r, "wolfID", "wolf not found")
		if !ok {
			return
		}
		wolf, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeWolfError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, wire.FromWolf(wolf))
	}
}

// createWolfHandler godoc
// @Summary Crear lobo
// @Description birthday en formato yyyy-MM-dd, no puede ser futuro. name solo letras.
// @Tags wolves
// @Accept json
// @Produce json
// @Param payload body wire.WolfPayload true "Datos del lobo"
// @Success 201 {object} wire.CreatedResponse
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Router /wolves [post]
func createWolfHandler(svc *wolves.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wolf, ok := decodeWolf(w, r)
		if !ok {
			return
		}
		id, err := svc.Create(r.Context(), wolf)
		if err != nil {
			writeWolfError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, wire.CreatedResponse{ID: id})
	}
}

// updateWolfHandler godoc
// @Summary Actualizar lobo (payload completo)
// @Tags wolves
// @Accept json
// @Param wolfID path int true "ID del lobo"
// @Param payload body wire.WolfPayload true "Datos del lobo"
// @Success 204
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 404 {string} string "wolf not found"
// @Router /wolves/{wolfID} [put]
func updateWolfHandler(svc *wolves.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(w, r, "wolfID", "wolf not found")
		if !ok {
			return
		}
		wolf, ok := decodeWolf(w, r)
		if !ok {
			return
		}
		wolf.ID = id
		if err := svc.Update(r.Context(), wolf); err != nil {
			writeWolfError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// deleteWolfHandler godoc
// @Summary Eliminar lobo (también lo saca de sus manadas)
// @Tags wolves
// @Param wolfID path int true "ID del lobo"
// @Success 204
// @Failure 404 {string} string "wolf not found"
// @Router /wolves/{wolfID} [delete]
func deleteWolfHandler(svc *wolves.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(w, r, "wolfID", "wolf not found")
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeWolfError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func decodeWolf(w http.ResponseWriter, r *http.Request) (wolves.Wolf, bool) {
	var req wire.WolfPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return wolves.Wolf{}, false
	}
	wolf, err := wire.WolfFromPayload(req)
	if err != nil {
		http.Error(w, "birthday must be yyyy-MM-dd", http.StatusBadRequest)
		return wolves.Wolf{}, false
	}
	return wolf, true
}

func writeWolfError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wolves.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, wolves.ErrNotFound):
		http.Error(w, "wolf not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
