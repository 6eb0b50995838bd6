package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

type ctxKey string

const (
	flashCookie = "tank_flash"

	flashKey  ctxKey = "flash"
	secretKey ctxKey = "flash_secret"
)

// Flash es un mensaje de una sola lectura que sobrevive a un redirect.
type Flash struct {
	Kind    string `json:"kind"` // success | error
	Message string `json:"message"`
}

// FlashContext:
// - Lee la cookie de flash (firmada con HMAC), la deja en el context y la borra.
// - Cookie inválida o adulterada => se ignora.
// - Deja el secret en el context para que SetFlash pueda firmar.
func FlashContext(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), secretKey, key)

			if c, err := r.Cookie(flashCookie); err == nil {
				if f, ok := decodeFlash(key, c.Value); ok {
					ctx = context.WithValue(ctx, flashKey, f)
				}
				http.SetCookie(w, &http.Cookie{
					Name:     flashCookie,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetFlash devuelve el flash recibido en este request (si hay).
func GetFlash(ctx context.Context) (Flash, bool) {
	v := ctx.Value(flashKey)
	if v == nil {
		return Flash{}, false
	}
	f, ok := v.(Flash)
	return f, ok
}

// SetFlash deja un flash para el próximo request. Requiere FlashContext.
func SetFlash(w http.ResponseWriter, r *http.Request, kind, msg string) {
	key, _ := r.Context().Value(secretKey).([]byte)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    encodeFlash(key, Flash{Kind: kind, Message: msg}),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func encodeFlash(key []byte, f Flash) string {
	b, _ := json.Marshal(f)
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(key, payload)
}

func decodeFlash(key []byte, value string) (Flash, bool) {
	payload, sig, ok := strings.Cut(value, ".")
	if !ok || payload == "" {
		return Flash{}, false
	}
	if !hmac.Equal([]byte(sig), []byte(sign(key, payload))) {
		return Flash{}, false
	}

	b, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return Flash{}, false
	}
	var f Flash
	if err := json.Unmarshal(b, &f); err != nil {
		return Flash{}, false
	}
	return f, true
}

func sign(key []byte, payload string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
