package fish

import "context"

// Repository trabaja siempre sobre el dataset completo:
// cada operación vuelve a leer del storage durable (no hay cache).
type Repository interface {
	Create(ctx context.Context, f Fish) error
	List(ctx context.Context) ([]Fish, error)
	GetByID(ctx context.Context, id string) (Fish, error)
	Update(ctx context.Context, id string, patch Patch) (Fish, error)
	Delete(ctx context.Context, id string) error
}

// Patch: nil = no tocar. Un puntero a "" sí se aplica (deja el campo vacío).
type Patch struct {
	Name        *string
	ImageURL    *string
	Personality *Personality
	Description *string
}
