package alert

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// newAlertID builds the human-facing reference: "ALERT-" plus the first six
// hex characters of a fresh UUID, upper-cased.
func newAlertID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "ALERT-" + strings.ToUpper(hex[:6])
}

// Trigger records a new active alert for the given patient.
func (s *Service) Trigger(ctx context.Context, patient string) (*Alert, error) {
	if patient == "" {
		return nil, fmt.Errorf("patient is required")
	}
	a := &Alert{
		AlertID: newAlertID(),
		Patient: patient,
		Status:  StatusActive,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// List returns alerts, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]*Alert, int, error) {
	return s.repo.List(ctx, status, limit, offset)
}

// UpdateStatus transitions an alert to the given status.
func (s *Service) UpdateStatus(ctx context.Context, alertID, status string) error {
	if status != StatusActive && status != StatusResolved {
		return fmt.Errorf("invalid status %q", status)
	}
	return s.repo.UpdateStatus(ctx, alertID, status)
}
