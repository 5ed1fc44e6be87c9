package supply

import "context"

type Repository interface {
	// Upsert sets the quantity for an item, creating it if needed. The
	// stored record is returned with its updates counter advanced.
	Upsert(ctx context.Context, item string, quantity int) (*Item, error)
	List(ctx context.Context, limit, offset int) ([]*Item, int, error)
	Delete(ctx context.Context, item string) error
}
