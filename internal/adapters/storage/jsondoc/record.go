package jsondoc

import (
	"bytes"
	"encoding/json"
)

// record es la forma en disco. created_at se guarda como string para
// conservar tal cual timestamps escritos por otras herramientas.
type record struct {
	ID          string
	Name        string
	ImageURL    string
	Personality string
	Description string
	CreatedAt   string

	// opaque guarda una entrada que no es un objeto; se reescribe sin tocar.
	opaque json.RawMessage
}

type recordJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	Personality string `json:"personality"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

func (rec record) MarshalJSON() ([]byte, error) {
	if rec.opaque != nil {
		return rec.opaque, nil
	}
	return json.Marshal(recordJSON{
		ID:          rec.ID,
		Name:        rec.Name,
		ImageURL:    rec.ImageURL,
		Personality: rec.Personality,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt,
	})
}

// UnmarshalJSON no falla nunca: un campo con otro tipo (número, bool, objeto)
// se lee como su texto JSON, y una entrada que no es objeto queda opaca.
func (rec *record) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil || fields == nil {
		rec.opaque = append(json.RawMessage(nil), b...)
		return nil
	}

	*rec = record{
		ID:          lenientString(fields["id"]),
		Name:        lenientString(fields["name"]),
		ImageURL:    lenientString(fields["image_url"]),
		Personality: lenientString(fields["personality"]),
		Description: lenientString(fields["description"]),
		CreatedAt:   lenientString(fields["created_at"]),
	}
	return nil
}

func lenientString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
