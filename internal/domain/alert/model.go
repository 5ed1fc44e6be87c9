package alert

import (
	"time"

	"github.com/google/uuid"
)

// Statuses an alert moves through. New alerts are always active.
const (
	StatusActive   = "active"
	StatusResolved = "resolved"
)

// Alert maps to the alerts table. AlertID is the human-facing reference
// ("ALERT-A1B2C3") shown to staff; ID is the row key.
type Alert struct {
	ID        uuid.UUID `db:"id" json:"id"`
	AlertID   string    `db:"alert_id" json:"alert_id"`
	Patient   string    `db:"patient" json:"patient"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
