package browse

import (
	"context"
	"fmt"
)

const (
	DefaultLimit = 1000
	MaxLimit     = 10000
)

// allowedTables is the closed set of tables exposed for browsing. Requests
// for anything else are rejected before any SQL is built.
var allowedTables = map[string]bool{
	"alerts":           true,
	"symptom_reports":  true,
	"medical_supplies": true,
	"deliveries":       true,
	"sar_requests":     true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ErrUnknownTable reports a table outside the allowlist.
type ErrUnknownTable struct{ Name string }

func (e *ErrUnknownTable) Error() string {
	return fmt.Sprintf("table %q is not browsable", e.Name)
}

// Browse returns up to limit rows of an allowlisted table. Limits outside
// [1, MaxLimit] are clamped to the default.
func (s *Service) Browse(ctx context.Context, table string, limit int) ([]map[string]interface{}, error) {
	if !allowedTables[table] {
		return nil, &ErrUnknownTable{Name: table}
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return s.repo.Rows(ctx, table, limit)
}
