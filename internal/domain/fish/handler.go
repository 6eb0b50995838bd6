package fish

import (
	"errors"
	"fmt"
	"net/http"

	"crud-tank/internal/middleware"
	"crud-tank/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las vistas HTML del tanque.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	h := &htmlHandlers{svc: svc, log: log.With(map[string]any{"component": "fish.html"})}

	r.Get("/", h.tank)

	r.Route("/fish", func(fr chi.Router) {
		fr.Get("/new", h.newForm)
		fr.Post("/new", h.create)

		fr.Get("/{fishID}", h.show)

		fr.Get("/{fishID}/edit", h.editForm)
		fr.Post("/{fishID}/edit", h.update)

		fr.Get("/{fishID}/delete", h.confirmDelete)
		fr.Post("/{fishID}/delete", h.remove)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(StaticFS()))))
}

type htmlHandlers struct {
	svc *Service
	log logger.Logger
}

const (
	msgRequired     = "Name and Image URL are required!"
	msgNotFound     = "Fish not found!"
	msgUpdateFailed = "Failed to update fish."
	msgDeleteFailed = "Failed to delete fish."

	flashSuccess = "success"
	flashError   = "error"

	formName        = "name"
	formImageURL    = "image_url"
	formPersonality = "personality"
	formDescription = "description"
)

func (h *htmlHandlers) tank(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		h.internalError(w, "list fish", err)
		return
	}
	h.render(w, r, http.StatusOK, "tank.html", pageData{Title: "Tank", FishList: items})
}

func (h *htmlHandlers) newForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "create.html", pageData{Title: "Add a fish"})
}

func (h *htmlHandlers) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	in := CreateInput{
		Name:        r.PostForm.Get(formName),
		ImageURL:    r.PostForm.Get(formImageURL),
		Personality: r.PostForm.Get(formPersonality),
		Description: r.PostForm.Get(formDescription),
	}

	f, err := h.svc.Create(r.Context(), in)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			h.render(w, r, http.StatusBadRequest, "create.html", pageData{
				Title: "Add a fish",
				Error: msgRequired,
				Form: formValues{
					Name:        in.Name,
					ImageURL:    in.ImageURL,
					Personality: Personality(in.Personality),
					Description: in.Description,
				},
			})
			return
		}
		h.internalError(w, "create fish", err)
		return
	}

	h.log.Info("fish created", map[string]any{"fish_id": f.ID})
	middleware.SetFlash(w, r, flashSuccess, fmt.Sprintf("Fish %q has been added to the tank!", f.Name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *htmlHandlers) show(w http.ResponseWriter, r *http.Request) {
	f, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.render(w, r, http.StatusOK, "detail.html", pageData{Title: f.Name, Fish: f})
}

func (h *htmlHandlers) editForm(w http.ResponseWriter, r *http.Request) {
	f, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.render(w, r, http.StatusOK, "edit.html", pageData{Title: "Edit " + f.Name, Fish: f, Form: formFromFish(f)})
}

// update pasa al servicio todos los campos enviados, incluso vacíos.
// Los que no vienen en el form quedan como estaban.
func (h *htmlHandlers) update(w http.ResponseWriter, r *http.Request) {
	current, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	patch := patchFromForm(r)
	updated, err := h.svc.Update(r.Context(), current.ID, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			form := formFromFish(current)
			applyPatch(&form, patch)
			h.render(w, r, http.StatusNotFound, "edit.html", pageData{
				Title: "Edit " + current.Name,
				Error: msgUpdateFailed,
				Fish:  current,
				Form:  form,
			})
			return
		}
		h.internalError(w, "update fish", err)
		return
	}

	middleware.SetFlash(w, r, flashSuccess, fmt.Sprintf("Fish %q has been updated!", updated.Name))
	http.Redirect(w, r, "/fish/"+updated.ID, http.StatusSeeOther)
}

func (h *htmlHandlers) confirmDelete(w http.ResponseWriter, r *http.Request) {
	f, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.render(w, r, http.StatusOK, "delete.html", pageData{Title: "Remove " + f.Name, Fish: f})
}

func (h *htmlHandlers) remove(w http.ResponseWriter, r *http.Request) {
	f, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), f.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			middleware.SetFlash(w, r, flashError, msgDeleteFailed)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.internalError(w, "delete fish", err)
		return
	}

	h.log.Info("fish deleted", map[string]any{"fish_id": f.ID})
	middleware.SetFlash(w, r, flashSuccess, fmt.Sprintf("Fish %q has been removed from the tank.", f.Name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// lookup resuelve {fishID}. Si no existe, flash de error + redirect al tanque.
func (h *htmlHandlers) lookup(w http.ResponseWriter, r *http.Request) (Fish, bool) {
	f, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "fishID"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			middleware.SetFlash(w, r, flashError, msgNotFound)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return Fish{}, false
		}
		h.internalError(w, "get fish", err)
		return Fish{}, false
	}
	return f, true
}

func (h *htmlHandlers) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	if err := render(w, r, status, page, data); err != nil {
		h.log.Error("render failed", map[string]any{"page": page, "error": err.Error()})
	}
}

func (h *htmlHandlers) internalError(w http.ResponseWriter, op string, err error) {
	h.log.Error(op+" failed", map[string]any{"error": err.Error()})
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func patchFromForm(r *http.Request) Patch {
	var p Patch
	if v, ok := r.PostForm[formName]; ok {
		p.Name = first(v)
	}
	if v, ok := r.PostForm[formImageURL]; ok {
		p.ImageURL = first(v)
	}
	if v, ok := r.PostForm[formPersonality]; ok {
		pers := Personality(*first(v))
		p.Personality = &pers
	}
	if v, ok := r.PostForm[formDescription]; ok {
		p.Description = first(v)
	}
	return p
}

func first(v []string) *string {
	s := ""
	if len(v) > 0 {
		s = v[0]
	}
	return &s
}

func applyPatch(form *formValues, p Patch) {
	if p.Name != nil {
		form.Name = *p.Name
	}
	if p.ImageURL != nil {
		form.ImageURL = *p.ImageURL
	}
	if p.Personality != nil {
		form.Personality = *p.Personality
	}
	if p.Description != nil {
		form.Description = *p.Description
	}
}
