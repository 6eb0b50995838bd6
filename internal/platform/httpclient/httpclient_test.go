package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDo_RelativePathAndHeaders(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/docs/fish.json" {
			http.Error(w, "bad path "+r.URL.Path, http.StatusBadRequest)
			return
		}
		if r.Header.Get("X-Api-Key") != "k" || r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "bad headers", http.StatusBadRequest)
			return
		}
		b, _ := io.ReadAll(r.Body)
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	c := New(0)
	c.BaseURL = ts.URL

	got, err := c.Do(context.Background(), http.MethodPut, "docs/fish.json",
		map[string]string{"X-Api-Key": "k", " ": "ignored"}, []byte(`[]`), "application/json")
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestDo_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := New(0).Do(context.Background(), http.MethodGet, ts.URL, nil, nil, "")
	if !IsStatus(err, http.StatusNotFound) {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected body in error, got %q", err.Error())
	}
	if IsStatus(err, http.StatusInternalServerError) {
		t.Fatalf("IsStatus matched the wrong status")
	}
}

func TestDo_MaxBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer ts.Close()

	c := New(0)
	c.MaxBody = 10
	got, err := c.Do(context.Background(), http.MethodGet, ts.URL, nil, nil, "")
	if !errors.Is(err, ErrBodyTooLarge) {
		t.Fatalf("expected ErrBodyTooLarge, got body=%d err=%v", len(got), err)
	}
	if got != nil {
		t.Fatalf("a truncated body must not be returned")
	}

	// justo en el límite sí pasa
	c.MaxBody = 100
	got, err = c.Do(context.Background(), http.MethodGet, ts.URL, nil, nil, "")
	if err != nil || len(got) != 100 {
		t.Fatalf("expected full 100 byte body, got %d err=%v", len(got), err)
	}
}

func TestResolveURL(t *testing.T) {
	c := New(0)
	if _, err := c.resolveURL(""); err == nil {
		t.Fatalf("expected error for empty url")
	}
	if _, err := c.resolveURL("/x"); err == nil {
		t.Fatalf("expected error for relative path without BaseURL")
	}
	if u, _ := c.resolveURL("https://h/x"); u != "https://h/x" {
		t.Fatalf("absolute url must pass through, got %q", u)
	}
}
