package delivery

import "context"

type Repository interface {
	Create(ctx context.Context, d *Delivery) error
	List(ctx context.Context, limit, offset int) ([]*Delivery, int, error)
}
