package fish

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"
	"unicode"
	"unicode/utf8"

	"crud-tank/internal/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = mustParsePages("tank.html", "create.html", "detail.html", "edit.html", "delete.html")

// StaticFS expone los assets (css/js) para montarlos en /static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// formValues son los valores que se vuelven a mostrar en un formulario.
type formValues struct {
	Name        string
	ImageURL    string
	Personality Personality
	Description string
}

type pageData struct {
	Title string
	Flash *middleware.Flash
	Error string

	Fish     Fish
	FishList []Fish
	Form     formValues

	Personalities []Personality
}

var templateFuncs = template.FuncMap{
	"speed": func(p Personality) Personality {
		if !p.Known() {
			return PersonalityMedium
		}
		return p
	},
	"when": func(t time.Time) string {
		if t.IsZero() {
			return "unknown"
		}
		return t.Format("Jan 2, 2006 15:04")
	},
	"title": titleCase,
}

// titleCase pone en mayúscula la primera runa (no el primer byte).
func titleCase(p Personality) string {
	s := string(p)
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func mustParsePages(names ...string) map[string]*template.Template {
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t := template.Must(template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name))
		out[name] = t
	}
	return out
}

// render ejecuta a un buffer primero: si el template falla no se manda un 200 a medias.
func render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) error {
	if f, ok := middleware.GetFlash(r.Context()); ok {
		data.Flash = &f
	}
	data.Personalities = Personalities

	var buf bytes.Buffer
	if err := pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}

func formFromFish(f Fish) formValues {
	return formValues{
		Name:        f.Name,
		ImageURL:    f.ImageURL,
		Personality: f.Personality,
		Description: f.Description,
	}
}
