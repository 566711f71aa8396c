// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is an immutable record of a completed checkout. No operation updates
// or deletes an order once it is written.
type Order struct {
	ID        uuid.UUID   // The unique ID for this order.
	UserID    uuid.UUID   // The buyer.
	Items     []OrderItem // Item snapshots copied from the cart at checkout.
	Total     float64     // Sum of price times quantity over Items, from cart snapshot prices.
	CreatedAt time.Time   // Server-assigned checkout timestamp.
}

// OrderItem is one purchased line, frozen at checkout time.
type OrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	ImageURL  string    `json:"image"`
}

// Subtotal returns the line total.
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
