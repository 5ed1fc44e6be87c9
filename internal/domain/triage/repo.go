package triage

import "context"

type Repository interface {
	Create(ctx context.Context, r *SymptomReport) error
	ListByPatient(ctx context.Context, patient string, limit, offset int) ([]*SymptomReport, int, error)
}
