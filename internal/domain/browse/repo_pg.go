package browse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Rows(ctx context.Context, table string, limit int) ([]map[string]interface{}, error) {
	// Table names cannot be bound as parameters; the identifier is quoted
	// and the service layer has already checked it against the allowlist.
	query := fmt.Sprintf(`SELECT * FROM %s LIMIT $1`, pgx.Identifier{table}.Sanitize())
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	records := make([]map[string]interface{}, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		record := make(map[string]interface{}, len(fields))
		for i, f := range fields {
			record[string(f.Name)] = values[i]
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
