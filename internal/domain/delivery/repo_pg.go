package delivery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, d *Delivery) error {
	d.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO deliveries (id, destination, item, quantity, vehicle, delivery_time, requested_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		d.ID, d.Destination, d.Item, d.Quantity, d.Vehicle, d.DeliveryTime, d.RequestedBy)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Delivery, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM deliveries`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, destination, item, quantity, vehicle, delivery_time, requested_by, created_at
		FROM deliveries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Delivery
	for rows.Next() {
		var d Delivery
		if err := rows.Scan(&d.ID, &d.Destination, &d.Item, &d.Quantity, &d.Vehicle, &d.DeliveryTime, &d.RequestedBy, &d.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &d)
	}
	return items, total, nil
}
