package delivery

import (
	"time"

	"github.com/google/uuid"
)

// Delivery is a scheduled drop-off of supplies to a destination.
type Delivery struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Destination  string    `db:"destination" json:"destination"`
	Item         string    `db:"item" json:"item"`
	Quantity     int       `db:"quantity" json:"quantity"`
	Vehicle      string    `db:"vehicle" json:"vehicle"`
	DeliveryTime string    `db:"delivery_time" json:"delivery_time"`
	RequestedBy  string    `db:"requested_by" json:"requested_by"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
