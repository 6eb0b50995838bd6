package fish

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("fish not found")
)

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type CreateInput struct {
	Name        string
	ImageURL    string
	Personality string
	Description string
}

// Create exige name e image_url. El id y el timestamp los genera el servidor.
func (s *Service) Create(ctx context.Context, in CreateInput) (Fish, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Fish{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		return Fish{}, ErrInvalidInput
	}

	f := Fish{
		ID:          s.newID(),
		Name:        strings.TrimSpace(in.Name),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Personality: ParsePersonality(in.Personality),
		Description: in.Description,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return Fish{}, err
	}
	return f, nil
}

func (s *Service) List(ctx context.Context) ([]Fish, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Fish, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Fish{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Update aplica solo los campos presentes en el patch.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Fish, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Fish{}, ErrNotFound
	}
	if patch.Personality != nil {
		p := Personality(strings.ToLower(strings.TrimSpace(string(*patch.Personality))))
		patch.Personality = &p
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
