package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a service locked into a cart: the price is snapshotted at the
// time of the first add and is not refreshed from the catalog afterwards.
type CartItem struct {
	ServiceID string  `db:"service_id" json:"service_id"`
	Title     string  `db:"title" json:"title"`
	Price     float64 `db:"price" json:"price"`
	Quantity  int     `db:"quantity" json:"quantity"`
}

// Cart holds the working set of a single customer. At most one cart per
// customer and at most one item per service_id exist at any time.
type Cart struct {
	CustomerID uuid.UUID  `db:"customer_id"`
	Items      []CartItem `db:"-"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// Total derives the cart total from the current items. It is never stored.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
