package catalog

import "time"

// Product is a catalog record. IDs are positive integers assigned by the
// sequencer and never reused while the product exists.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	NewPrice  float64   `json:"new_price"`
	OldPrice  float64   `json:"old_price"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"date"`
}
