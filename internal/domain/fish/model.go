package fish

import (
	"strings"
	"time"
)

// Personality define qué tan rápido nada el pez en el tanque.
// Es solo de presentación: el storage no la interpreta.
// @Enum fast, medium, slow
type Personality string

const (
	PersonalityFast   Personality = "fast"
	PersonalityMedium Personality = "medium"
	PersonalitySlow   Personality = "slow"
)

// Personalities en el orden en que se muestran en los formularios.
var Personalities = []Personality{PersonalityFast, PersonalityMedium, PersonalitySlow}

// ParsePersonality normaliza el valor recibido. Vacío => medium.
// Valores desconocidos se devuelven tal cual (no hay validación de esquema).
func ParsePersonality(s string) Personality {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PersonalityMedium
	}
	return Personality(s)
}

func (p Personality) Known() bool {
	switch p {
	case PersonalityFast, PersonalityMedium, PersonalitySlow:
		return true
	default:
		return false
	}
}

// Fish es el único registro persistido: un pez del tanque.
type Fish struct {
	ID string

	Name        string
	ImageURL    string
	Personality Personality
	Description string

	CreatedAt time.Time
}
