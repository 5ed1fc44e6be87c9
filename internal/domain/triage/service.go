package triage

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Submit classifies and records a symptom report for the given patient. The
// symptom name is normalized to lower case before classification so that the
// stored record matches what the classifier saw.
func (s *Service) Submit(ctx context.Context, patient, symptom string, userSeverity int) (*SymptomReport, error) {
	if patient == "" {
		return nil, fmt.Errorf("patient is required")
	}
	symptom = strings.ToLower(strings.TrimSpace(symptom))
	if symptom == "" {
		return nil, fmt.Errorf("symptom is required")
	}

	report := &SymptomReport{
		Patient:            patient,
		Symptom:            symptom,
		UserSeverity:       userSeverity,
		CalculatedSeverity: Classify(symptom, userSeverity),
		Timestamp:          s.now(),
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *Service) ListByPatient(ctx context.Context, patient string, limit, offset int) ([]*SymptomReport, int, error) {
	return s.repo.ListByPatient(ctx, patient, limit, offset)
}
