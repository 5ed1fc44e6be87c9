package supply

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Set records the current stock level for an item. Re-setting an existing
// item replaces its quantity and bumps the updates counter.
func (s *Service) Set(ctx context.Context, item string, quantity int) (*Item, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, fmt.Errorf("item is required")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}
	return s.repo.Upsert(ctx, item, quantity)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Item, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) Delete(ctx context.Context, item string) error {
	item = strings.TrimSpace(item)
	if item == "" {
		return fmt.Errorf("item is required")
	}
	return s.repo.Delete(ctx, item)
}
