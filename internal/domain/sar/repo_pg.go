package sar

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, req *Request) error {
	req.ID = uuid.New()
	data, err := satelliteJSON(req.SatelliteData)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO sar_requests (id, emergency_type, location, urgency, description, contact_number, satellite_data)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		req.ID, req.EmergencyType, req.Location, req.Urgency, req.Description, req.ContactNumber, data)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Request, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sar_requests`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, emergency_type, location, urgency, description, contact_number, satellite_data, created_at
		FROM sar_requests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Request
	for rows.Next() {
		var req Request
		var data []byte
		if err := rows.Scan(&req.ID, &req.EmergencyType, &req.Location, &req.Urgency, &req.Description, &req.ContactNumber, &data, &req.CreatedAt); err != nil {
			return nil, 0, err
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &req.SatelliteData); err != nil {
				return nil, 0, fmt.Errorf("decode satellite_data for %s: %w", req.ID, err)
			}
		}
		if req.SatelliteData == nil {
			req.SatelliteData = map[string]interface{}{}
		}
		items = append(items, &req)
	}
	return items, total, nil
}

func (r *repoPG) Update(ctx context.Context, req *Request) error {
	data, err := satelliteJSON(req.SatelliteData)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE sar_requests
		SET location = $2, urgency = $3, description = $4, contact_number = $5, satellite_data = $6
		WHERE id = $1`,
		req.ID, req.Location, req.Urgency, req.Description, req.ContactNumber, data)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sar request %s not found", req.ID)
	}
	return nil
}

func satelliteJSON(m map[string]interface{}) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}
