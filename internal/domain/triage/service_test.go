package triage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockRepo struct {
	reports []*SymptomReport
}

func (m *mockRepo) Create(_ context.Context, r *SymptomReport) error {
	r.ID = uuid.New()
	m.reports = append(m.reports, r)
	return nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patient string, limit, offset int) ([]*SymptomReport, int, error) {
	var result []*SymptomReport
	for _, r := range m.reports {
		if r.Patient == patient {
			result = append(result, r)
		}
	}
	return result, len(result), nil
}

// -- Tests --

func TestSubmit(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	report, err := svc.Submit(context.Background(), "patient1", "fever", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
	if report.UserSeverity != 5 {
		t.Errorf("expected user severity 5, got %d", report.UserSeverity)
	}
	// 5*2=10, already at the ceiling.
	if report.CalculatedSeverity != 10 {
		t.Errorf("expected calculated severity 10, got %d", report.CalculatedSeverity)
	}
	if report.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestSubmit_NormalizesSymptomName(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	report, err := svc.Submit(context.Background(), "patient1", "  FEVER ", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Symptom != "fever" {
		t.Errorf("expected normalized symptom 'fever', got %q", report.Symptom)
	}
	if report.CalculatedSeverity != 8 {
		t.Errorf("expected calculated severity 8, got %d", report.CalculatedSeverity)
	}
}

func TestSubmit_UnknownSymptomKept(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	report, err := svc.Submit(context.Background(), "patient1", "dizziness", 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.CalculatedSeverity != 9 {
		t.Errorf("expected identity fallback severity 9, got %d", report.CalculatedSeverity)
	}
}

func TestSubmit_RequiresSymptom(t *testing.T) {
	svc := NewService(&mockRepo{})
	if _, err := svc.Submit(context.Background(), "patient1", "  ", 5); err == nil {
		t.Error("expected error for empty symptom")
	}
}

func TestSubmit_RequiresPatient(t *testing.T) {
	svc := NewService(&mockRepo{})
	if _, err := svc.Submit(context.Background(), "", "fever", 5); err == nil {
		t.Error("expected error for empty patient")
	}
}

func TestSubmit_UsesServiceClock(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	report, err := svc.Submit(context.Background(), "patient1", "cough", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Timestamp.Equal(fixed) {
		t.Errorf("expected timestamp %v, got %v", fixed, report.Timestamp)
	}
}

func TestListByPatient(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	svc.Submit(context.Background(), "patient1", "fever", 5)
	svc.Submit(context.Background(), "patient1", "cough", 8)
	svc.Submit(context.Background(), "patient2", "headache", 6)

	items, total, err := svc.ListByPatient(context.Background(), "patient1", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("expected 2 reports for patient1, got %d (total %d)", len(items), total)
	}
}
