package catalog

import "time"

const (
	EventProductCreated = "product.created"
	EventProductDeleted = "product.deleted"
)

type ProductCreated struct {
	EventID   string    `json:"event_id"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductDeleted struct {
	EventID   string    `json:"event_id"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	DeletedAt time.Time `json:"deleted_at"`
}
