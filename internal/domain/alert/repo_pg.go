package alert

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const alertCols = `id, alert_id, patient, status, created_at`

func (r *repoPG) Create(ctx context.Context, a *Alert) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO alerts (id, alert_id, patient, status)
		VALUES ($1,$2,$3,$4)`,
		a.ID, a.AlertID, a.Patient, a.Status)
	return err
}

func (r *repoPG) List(ctx context.Context, status string, limit, offset int) ([]*Alert, int, error) {
	query := `SELECT ` + alertCols + ` FROM alerts WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM alerts WHERE 1=1`
	var args []interface{}
	idx := 1

	if status != "" {
		query += fmt.Sprintf(` AND status = $%d`, idx)
		countQuery += fmt.Sprintf(` AND status = $%d`, idx)
		args = append(args, status)
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Alert
	for rows.Next() {
		var a Alert
		if err := rows.Scan(&a.ID, &a.AlertID, &a.Patient, &a.Status, &a.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &a)
	}
	return items, total, nil
}

func (r *repoPG) UpdateStatus(ctx context.Context, alertID, status string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE alerts SET status = $2 WHERE alert_id = $1`, alertID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("alert %s not found", alertID)
	}
	return nil
}
