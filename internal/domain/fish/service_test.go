package fish

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory, ordenado)
// -------------------------

type testRepo struct {
	items  []Fish
	writes int
}

func (r *testRepo) Create(ctx context.Context, f Fish) error {
	for _, it := range r.items {
		if it.ID == f.ID {
			return errors.New("repo: already exists")
		}
	}
	r.items = append(r.items, f)
	r.writes++
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Fish, error) {
	out := make([]Fish, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Fish, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Fish{}, ErrNotFound
}

func (r *testRepo) Update(ctx context.Context, id string, p Patch) (Fish, error) {
	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		if p.Name != nil {
			r.items[i].Name = *p.Name
		}
		if p.ImageURL != nil {
			r.items[i].ImageURL = *p.ImageURL
		}
		if p.Personality != nil {
			r.items[i].Personality = *p.Personality
		}
		if p.Description != nil {
			r.items[i].Description = *p.Description
		}
		r.writes++
		return r.items[i], nil
	}
	return Fish{}, ErrNotFound
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.writes++
			return nil
		}
	}
	return ErrNotFound
}

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{}
	svc := NewService(repo)

	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("fish-%d", n)
	}
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func strPtr(s string) *string { return &s }

// -------------------------
// Tests
// -------------------------

func TestService_Create_GeneratesIDAndTimestamp(t *testing.T) {
	svc, repo := newTestService()

	f, err := svc.Create(context.Background(), CreateInput{
		Name:        "Nemo",
		ImageURL:    "http://x/n.png",
		Personality: "fast",
		Description: "clownfish",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if f.ID != "fish-1" {
		t.Fatalf("expected generated id fish-1, got %q", f.ID)
	}
	if f.CreatedAt != svc.now() {
		t.Fatalf("expected CreatedAt to be now, got %v", f.CreatedAt)
	}
	if f.Personality != PersonalityFast {
		t.Fatalf("expected personality fast, got %q", f.Personality)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 stored fish, got %d", len(repo.items))
	}
}

func TestService_Create_KeepsDescriptionVerbatim(t *testing.T) {
	svc, _ := newTestService()

	f, err := svc.Create(context.Background(), CreateInput{
		Name:        "  Nemo ",
		ImageURL:    " http://x/n.png",
		Description: "  striped\n",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if f.Name != "Nemo" || f.ImageURL != "http://x/n.png" {
		t.Fatalf("name and image must be trimmed, got %q %q", f.Name, f.ImageURL)
	}
	if f.Description != "  striped\n" {
		t.Fatalf("description must be stored as submitted, got %q", f.Description)
	}
}

func TestService_Create_DefaultsPersonalityToMedium(t *testing.T) {
	svc, _ := newTestService()

	f, err := svc.Create(context.Background(), CreateInput{Name: "Dory", ImageURL: "http://x/d.png"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if f.Personality != PersonalityMedium {
		t.Fatalf("expected default personality medium, got %q", f.Personality)
	}
	if f.Description != "" {
		t.Fatalf("expected empty description, got %q", f.Description)
	}
}

func TestService_Create_RequiresNameAndImage(t *testing.T) {
	svc, repo := newTestService()

	cases := []CreateInput{
		{Name: "", ImageURL: "http://x/n.png"},
		{Name: "Nemo", ImageURL: ""},
		{Name: "   ", ImageURL: "http://x/n.png"},
	}
	for _, in := range cases {
		_, err := svc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %#v, got %v", in, err)
		}
	}
	if repo.writes != 0 {
		t.Fatalf("expected no writes after rejected creates, got %d", repo.writes)
	}
}

func TestService_Create_UniqueIDs(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo) // uuid real

	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		f, err := svc.Create(context.Background(), CreateInput{Name: "n", ImageURL: "i"})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if _, dup := seen[f.ID]; dup {
			t.Fatalf("duplicate id %q", f.ID)
		}
		seen[f.ID] = struct{}{}
	}
}

func TestService_Update_OnlySuppliedFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	f, _ := svc.Create(ctx, CreateInput{Name: "Nemo", ImageURL: "http://x/n.png", Personality: "fast", Description: "clownfish"})

	updated, err := svc.Update(ctx, f.ID, Patch{Description: strPtr("renamed")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Nemo" || updated.Personality != PersonalityFast || updated.ImageURL != "http://x/n.png" {
		t.Fatalf("unexpected untouched fields: %#v", updated)
	}
	if updated.Description != "renamed" {
		t.Fatalf("expected description renamed, got %q", updated.Description)
	}
	if updated.CreatedAt != f.CreatedAt || updated.ID != f.ID {
		t.Fatalf("id/created_at must not change")
	}
}

func TestService_Update_NormalizesPersonality(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	f, _ := svc.Create(ctx, CreateInput{Name: "Nemo", ImageURL: "i"})
	p := Personality(" SLOW ")
	updated, err := svc.Update(ctx, f.ID, Patch{Personality: &p})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Personality != PersonalitySlow {
		t.Fatalf("expected slow, got %q", updated.Personality)
	}
}

func TestService_Update_UnknownID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), "missing", Patch{Name: strPtr("x")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	_, err = svc.Update(context.Background(), "  ", Patch{Name: strPtr("x")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank id, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a, _ := svc.Create(ctx, CreateInput{Name: "A", ImageURL: "i"})
	_, _ = svc.Create(ctx, CreateInput{Name: "B", ImageURL: "i"})

	if err := svc.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.items) != 2 {
		t.Fatalf("expected 2 fish after failed delete, got %d", len(repo.items))
	}

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.items) != 1 || repo.items[0].Name != "B" {
		t.Fatalf("expected only B left, got %#v", repo.items)
	}
}

func TestParsePersonality(t *testing.T) {
	if got := ParsePersonality(""); got != PersonalityMedium {
		t.Fatalf("empty => medium, got %q", got)
	}
	if got := ParsePersonality(" Fast "); got != PersonalityFast {
		t.Fatalf("expected fast, got %q", got)
	}
	got := ParsePersonality("sleepy")
	if got != Personality("sleepy") || got.Known() {
		t.Fatalf("unknown values are kept as-is and not Known, got %q", got)
	}
}
