package shelters

import "context"

// Repository lo implementa el backend remoto (adapters/backend) o memory en dev.
type Repository interface {
	List(ctx context.Context) ([]Shelter, error)
	GetByID(ctx context.Context, id string) (Shelter, error)
	Create(ctx context.Context, s Shelter) (Shelter, error)
	Update(ctx context.Context, s Shelter) (Shelter, error)
	Delete(ctx context.Context, id string) error
}
