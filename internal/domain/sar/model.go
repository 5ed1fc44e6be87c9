package sar

import (
	"time"

	"github.com/google/uuid"
)

// Request is a search-and-rescue dispatch record. SatelliteData carries
// whatever the imagery search returned, empty when none was fetched.
type Request struct {
	ID            uuid.UUID              `db:"id" json:"id"`
	EmergencyType string                 `db:"emergency_type" json:"emergency_type"`
	Location      string                 `db:"location" json:"location"`
	Urgency       string                 `db:"urgency" json:"urgency"`
	Description   string                 `db:"description" json:"description,omitempty"`
	ContactNumber string                 `db:"contact_number" json:"contact_number,omitempty"`
	SatelliteData map[string]interface{} `db:"satellite_data" json:"satellite_data"`
	CreatedAt     time.Time              `db:"created_at" json:"created_at"`
}
