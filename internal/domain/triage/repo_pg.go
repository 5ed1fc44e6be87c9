package triage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const reportCols = `id, patient, symptom, user_severity, calculated_severity, submitted_at`

func (r *repoPG) Create(ctx context.Context, s *SymptomReport) error {
	s.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO symptom_reports (id, patient, symptom, user_severity, calculated_severity, submitted_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		s.ID, s.Patient, s.Symptom, s.UserSeverity, s.CalculatedSeverity, s.Timestamp)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, patient string, limit, offset int) ([]*SymptomReport, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM symptom_reports WHERE patient = $1`, patient).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+reportCols+` FROM symptom_reports WHERE patient = $1 ORDER BY submitted_at DESC LIMIT $2 OFFSET $3`, patient, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*SymptomReport
	for rows.Next() {
		var s SymptomReport
		if err := rows.Scan(&s.ID, &s.Patient, &s.Symptom, &s.UserSeverity, &s.CalculatedSeverity, &s.Timestamp); err != nil {
			return nil, 0, err
		}
		items = append(items, &s)
	}
	return items, total, nil
}
