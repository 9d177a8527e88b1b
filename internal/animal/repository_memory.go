package animal

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
)

var errNotFound = errors.New("animal not found")

type InMemoryRepository struct {
	mu      sync.RWMutex
	animals map[string]*Animal
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		animals: make(map[string]*Animal),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, a *Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	stored := *a
	r.animals[a.ID] = &stored
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.animals[id]
	if !ok {
		return nil, errNotFound
	}
	found := *a
	return &found, nil
}

func (r *InMemoryRepository) ListByFarmer(ctx context.Context, farmerID, species string) ([]*Animal, error) {
	return r.list(func(a *Animal) bool {
		return a.FarmerID == farmerID && (species == "" || a.Species == species)
	})
}

func (r *InMemoryRepository) ListAll(ctx context.Context, species string) ([]*Animal, error) {
	return r.list(func(a *Animal) bool {
		return species == "" || a.Species == species
	})
}

func (r *InMemoryRepository) list(match func(*Animal) bool) ([]*Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Animal
	for _, a := range r.animals {
		if match(a) {
			found := *a
			out = append(out, &found)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TagID < out[j].TagID })
	return out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, a *Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.animals[a.ID]; !ok {
		return errNotFound
	}
	stored := *a
	r.animals[a.ID] = &stored
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.animals[id]; !ok {
		return errNotFound
	}
	delete(r.animals, id)
	return nil
}
