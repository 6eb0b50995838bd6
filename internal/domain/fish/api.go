package fish

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"crud-tank/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes monta la API JSON sobre el mismo servicio que las vistas.
func RegisterAPIRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"component": "fish.api"})

	r.Route("/api/fish", func(ar chi.Router) {
		ar.Get("/", listFishHandler(svc, log))
		ar.Post("/", createFishHandler(svc, log))
		ar.Get("/{fishID}", getFishHandler(svc, log))
		ar.Patch("/{fishID}", updateFishHandler(svc, log))
		ar.Delete("/{fishID}", deleteFishHandler(svc, log))
	})
}

// createFishRequest es el cuerpo para agregar un pez al tanque.
type createFishRequest struct {
	Name        string      `json:"name"`
	ImageURL    string      `json:"image_url"`
	Personality Personality `json:"personality" enums:"fast,medium,slow"` // opcional, default medium
	Description string      `json:"description"`
}

// updateFishRequest: punteros para PATCH real, nil = no tocar.
type updateFishRequest struct {
	Name        *string      `json:"name"`
	ImageURL    *string      `json:"image_url"`
	Personality *Personality `json:"personality" enums:"fast,medium,slow"`
	Description *string      `json:"description"`
}

// fishResponse representa un pez devuelto por la API.
type fishResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ImageURL    string      `json:"image_url"`
	Personality Personality `json:"personality"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}

// listFishHandler godoc
// @Summary Listar peces
// @Description Devuelve todos los peces del tanque en el orden en que están guardados.
// @Tags fish
// @Produce json
// @Success 200 {array} fishResponse
// @Failure 500 {string} string "internal error"
// @Router /api/fish [get]
func listFishHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list fish failed", map[string]any{"error": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]fishResponse, 0, len(items))
		for _, f := range items {
			out = append(out, toFishResponse(f))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createFishHandler godoc
// @Summary Agregar pez
// @Description Crea un pez con id y created_at generados por el servidor. name e image_url son obligatorios.
// @Tags fish
// @Accept json
// @Produce json
// @Param payload body createFishRequest true "Datos del pez"
// @Success 201 {object} fishResponse
// @Failure 400 {string} string "invalid json / name and image_url are required"
// @Failure 500 {string} string "internal error"
// @Router /api/fish [post]
func createFishHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createFishRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		f, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			ImageURL:    req.ImageURL,
			Personality: string(req.Personality),
			Description: req.Description,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "name and image_url are required", http.StatusBadRequest)
				return
			}
			log.Error("create fish failed", map[string]any{"error": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toFishResponse(f))
	}
}

// getFishHandler godoc
// @Summary Ver pez
// @Tags fish
// @Produce json
// @Param fishID path string true "ID del pez"
// @Success 200 {object} fishResponse
// @Failure 404 {string} string "fish not found"
// @Router /api/fish/{fishID} [get]
func getFishHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.GetByID(r.Context(), chi.URLParam(r, "fishID"))
		if err != nil {
			writeServiceError(w, log, "get fish", err)
			return
		}
		writeJSON(w, http.StatusOK, toFishResponse(f))
	}
}

// updateFishHandler godoc
// @Summary Actualizar pez
// @Description Solo se modifican los campos presentes en el body. Un string vacío sí se aplica.
// @Tags fish
// @Accept json
// @Produce json
// @Param fishID path string true "ID del pez"
// @Param payload body updateFishRequest true "Campos a modificar"
// @Success 200 {object} fishResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "fish not found"
// @Router /api/fish/{fishID} [patch]
func updateFishHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateFishRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		f, err := svc.Update(r.Context(), chi.URLParam(r, "fishID"), Patch{
			Name:        req.Name,
			ImageURL:    req.ImageURL,
			Personality: req.Personality,
			Description: req.Description,
		})
		if err != nil {
			writeServiceError(w, log, "update fish", err)
			return
		}
		writeJSON(w, http.StatusOK, toFishResponse(f))
	}
}

// deleteFishHandler godoc
// @Summary Quitar pez
// @Tags fish
// @Param fishID path string true "ID del pez"
// @Success 204
// @Failure 404 {string} string "fish not found"
// @Router /api/fish/{fishID} [delete]
func deleteFishHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "fishID")); err != nil {
			writeServiceError(w, log, "delete fish", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeServiceError(w http.ResponseWriter, log logger.Logger, op string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "fish not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Error(op+" failed", map[string]any{"error": err.Error()})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toFishResponse(f Fish) fishResponse {
	return fishResponse{
		ID:          f.ID,
		Name:        f.Name,
		ImageURL:    f.ImageURL,
		Personality: f.Personality,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
