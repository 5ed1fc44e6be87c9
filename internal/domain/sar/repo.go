package sar

import "context"

type Repository interface {
	Create(ctx context.Context, r *Request) error
	List(ctx context.Context, limit, offset int) ([]*Request, int, error)
	Update(ctx context.Context, r *Request) error
}
