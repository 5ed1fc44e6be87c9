package triage

import (
	"time"

	"github.com/google/uuid"
)

// SymptomReport maps to the symptom_reports table. A report is the immutable
// record of a single submission: the calculated severity is derived from
// (symptom, user severity) at submission time and never recomputed.
type SymptomReport struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	Patient            string    `db:"patient" json:"patient"`
	Symptom            string    `db:"symptom" json:"symptom"`
	UserSeverity       int       `db:"user_severity" json:"user_severity"`
	CalculatedSeverity int       `db:"calculated_severity" json:"calculated_severity"`
	Timestamp          time.Time `db:"submitted_at" json:"timestamp"`
}
