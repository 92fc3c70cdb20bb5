package cart

import "time"

const (
	EventItemAdded   = "cart.item_added"
	EventItemRemoved = "cart.item_removed"
)

type ItemAdded struct {
	EventID  string    `json:"event_id"`
	Identity string    `json:"identity"`
	Slot     int       `json:"slot"`
	AddedAt  time.Time `json:"added_at"`
}

type ItemRemoved struct {
	EventID   string    `json:"event_id"`
	Identity  string    `json:"identity"`
	Slot      int       `json:"slot"`
	RemovedAt time.Time `json:"removed_at"`
}
