package supply

import "time"

// Item maps to the medical_supplies table. Item names are the natural key;
// Updates counts how many times the quantity has been set since the item was
// first stocked.
type Item struct {
	Item      string    `db:"item" json:"item"`
	Quantity  int       `db:"quantity" json:"quantity"`
	Updates   int       `db:"updates" json:"updates"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
