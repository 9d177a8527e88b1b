package animal

import "context"

// Repository defines all database operations for the animal register.
type Repository interface {
	Create(ctx context.Context, a *Animal) error
	GetByID(ctx context.Context, id string) (*Animal, error)

	// species filters when non-empty
	ListByFarmer(ctx context.Context, farmerID, species string) ([]*Animal, error)
	ListAll(ctx context.Context, species string) ([]*Animal, error)

	Update(ctx context.Context, a *Animal) error
	Delete(ctx context.Context, id string) error
}
