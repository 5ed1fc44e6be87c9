package supply

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Upsert(ctx context.Context, item string, quantity int) (*Item, error) {
	var it Item
	err := r.pool.QueryRow(ctx, `
		INSERT INTO medical_supplies (item, quantity, updates, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (item) DO UPDATE
		SET quantity = EXCLUDED.quantity,
		    updates = medical_supplies.updates + 1,
		    updated_at = now()
		RETURNING item, quantity, updates, updated_at`,
		item, quantity).Scan(&it.Item, &it.Quantity, &it.Updates, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Item, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM medical_supplies`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT item, quantity, updates, updated_at
		FROM medical_supplies
		ORDER BY item
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.Item, &it.Quantity, &it.Updates, &it.UpdatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &it)
	}
	return items, total, nil
}

func (r *repoPG) Delete(ctx context.Context, item string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM medical_supplies WHERE item = $1`, item)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("supply item %s not found", item)
	}
	return nil
}
