package alert

import "context"

type Repository interface {
	Create(ctx context.Context, a *Alert) error
	List(ctx context.Context, status string, limit, offset int) ([]*Alert, int, error)
	UpdateStatus(ctx context.Context, alertID, status string) error
}
