package jsondoc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"crud-tank/internal/domain/fish"
	"crud-tank/internal/platform/logger"
	"crud-tank/internal/ports/storage"
)

// FishRepo usa un documento JSON como pseudo-tabla: cada operación carga
// el dataset completo, lo modifica en memoria y lo reescribe entero.
// No hay locking: con escritores concurrentes gana el último.
type FishRepo struct {
	doc storage.DocumentStore
	log logger.Logger
}

func NewFishRepo(doc storage.DocumentStore, log logger.Logger) *FishRepo {
	if log == nil {
		log = logger.Nop()
	}
	return &FishRepo{doc: doc, log: log}
}

func (r *FishRepo) Create(ctx context.Context, f fish.Fish) error {
	if strings.TrimSpace(f.ID) == "" {
		return errors.New("fish id required")
	}

	data, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, rec := range data {
		if rec.ID == f.ID {
			return errors.New("fish already exists")
		}
	}

	data = append(data, toRecord(f))
	return r.save(ctx, data)
}

func (r *FishRepo) List(ctx context.Context) ([]fish.Fish, error) {
	data, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]fish.Fish, 0, len(data))
	for _, rec := range data {
		if rec.opaque != nil {
			continue
		}
		out = append(out, rec.toFish())
	}
	return out, nil
}

func (r *FishRepo) GetByID(ctx context.Context, id string) (fish.Fish, error) {
	data, err := r.load(ctx)
	if err != nil {
		return fish.Fish{}, err
	}
	for _, rec := range data {
		if rec.ID == id {
			return rec.toFish(), nil
		}
	}
	return fish.Fish{}, fish.ErrNotFound
}

func (r *FishRepo) Update(ctx context.Context, id string, patch fish.Patch) (fish.Fish, error) {
	data, err := r.load(ctx)
	if err != nil {
		return fish.Fish{}, err
	}

	for i := range data {
		if data[i].ID != id {
			continue
		}

		if patch.Name != nil {
			data[i].Name = *patch.Name
		}
		if patch.ImageURL != nil {
			data[i].ImageURL = *patch.ImageURL
		}
		if patch.Personality != nil {
			data[i].Personality = string(*patch.Personality)
		}
		if patch.Description != nil {
			data[i].Description = *patch.Description
		}

		if err := r.save(ctx, data); err != nil {
			return fish.Fish{}, err
		}
		return data[i].toFish(), nil
	}

	return fish.Fish{}, fish.ErrNotFound
}

func (r *FishRepo) Delete(ctx context.Context, id string) error {
	data, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]record, 0, len(data))
	for _, rec := range data {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}

	if len(kept) == len(data) {
		return fish.ErrNotFound
	}
	return r.save(ctx, kept)
}

// load: documento ausente o ilegible => dataset vacío.
// Otros errores del backend (I/O, red) sí se propagan.
func (r *FishRepo) load(ctx context.Context) ([]record, error) {
	raw, err := r.doc.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNoDocument) {
			return []record{}, nil
		}
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	if len(strings.TrimSpace(string(raw))) == 0 {
		return []record{}, nil
	}

	// solo un documento sintácticamente roto cuenta como vacío; un JSON
	// válido con otra forma no se pisa
	if !json.Valid(raw) {
		r.log.Warn("dataset unreadable, treating as empty", map[string]any{"bytes": len(raw)})
		return []record{}, nil
	}

	var data []record
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("load dataset: document is not a json array: %w", err)
	}
	if data == nil {
		data = []record{}
	}
	return data, nil
}

func (r *FishRepo) save(ctx context.Context, data []record) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := r.doc.Save(ctx, b); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}
	return nil
}

func toRecord(f fish.Fish) record {
	return record{
		ID:          f.ID,
		Name:        f.Name,
		ImageURL:    f.ImageURL,
		Personality: string(f.Personality),
		Description: f.Description,
		CreatedAt:   formatCreatedAt(f.CreatedAt),
	}
}

func (rec record) toFish() fish.Fish {
	p := fish.Personality(rec.Personality)
	if rec.Personality == "" {
		p = fish.PersonalityMedium
	}
	return fish.Fish{
		ID:          rec.ID,
		Name:        rec.Name,
		ImageURL:    rec.ImageURL,
		Personality: p,
		Description: rec.Description,
		CreatedAt:   parseCreatedAt(rec.CreatedAt),
	}
}

// Layouts aceptados al leer. El primero es el que se escribe.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(createdAtLayouts[0])
}

func parseCreatedAt(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
