package browse

import "context"

type Repository interface {
	// Rows dumps up to limit rows of the named table as generic records.
	// Callers must validate the table name before calling.
	Rows(ctx context.Context, table string, limit int) ([]map[string]interface{}, error)
}
