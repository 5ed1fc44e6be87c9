package delivery

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

// Request schedules a delivery on behalf of requestedBy.
func (s *Service) Request(ctx context.Context, d *Delivery) (*Delivery, error) {
	d.Destination = strings.TrimSpace(d.Destination)
	d.Item = strings.TrimSpace(d.Item)
	if d.Destination == "" {
		return nil, fmt.Errorf("destination is required")
	}
	if d.Item == "" {
		return nil, fmt.Errorf("item is required")
	}
	if d.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Delivery, int, error) {
	return s.repo.List(ctx, limit, offset)
}
