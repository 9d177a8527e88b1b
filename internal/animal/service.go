package animal

import (
	"context"
	"errors"
	"time"

	"pashumitra/internal/auth"
)

var (
	ErrNotFound  = errors.New("animal not found")
	ErrForbidden = errors.New("not allowed to access this animal")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func staffRole(role string) bool {
	switch role {
	case auth.RoleParavet, auth.RoleVeterinarian, auth.RoleAdmin:
		return true
	}
	return false
}

// Register records a new animal under the acting user.
func (s *Service) Register(ctx context.Context, farmerID string, a *Animal) (*Animal, error) {
	if a.TagID == "" || a.Breed == "" || a.Gender == "" {
		return nil, errors.New("missing required fields")
	}
	if !validSpecies(a.Species) {
		return nil, errors.New("unknown species")
	}
	if a.AgeMonths < 0 {
		return nil, errors.New("age cannot be negative")
	}
	if a.WeightKg != nil && *a.WeightKg <= 0 {
		return nil, errors.New("weight must be positive")
	}

	a.FarmerID = farmerID
	if a.Status == "" {
		a.Status = "healthy"
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// List returns the acting user's animals; staff roles see the whole register.
func (s *Service) List(ctx context.Context, userID, role, species string) ([]*Animal, error) {
	if species != "" && !validSpecies(species) {
		return nil, errors.New("unknown species")
	}

	if staffRole(role) {
		return s.repo.ListAll(ctx, species)
	}
	return s.repo.ListByFarmer(ctx, userID, species)
}

// Get returns one animal, enforcing ownership for farmers.
func (s *Service) Get(ctx context.Context, userID, role, animalID string) (*Animal, error) {
	a, err := s.repo.GetByID(ctx, animalID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !staffRole(role) && a.FarmerID != userID {
		return nil, ErrForbidden
	}
	return a, nil
}

// Update replaces the editable fields of an animal the user may access.
func (s *Service) Update(ctx context.Context, userID, role string, a *Animal) (*Animal, error) {
	existing, err := s.Get(ctx, userID, role, a.ID)
	if err != nil {
		return nil, err
	}
	if !validSpecies(a.Species) {
		return nil, errors.New("unknown species")
	}
	if a.WeightKg != nil && *a.WeightKg <= 0 {
		return nil, errors.New("weight must be positive")
	}

	a.FarmerID = existing.FarmerID
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an animal the user may access.
func (s *Service) Delete(ctx context.Context, userID, role, animalID string) error {
	if _, err := s.Get(ctx, userID, role, animalID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, animalID)
}
