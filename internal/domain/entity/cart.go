// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one line of a user's private cart. It snapshots the product's
// name, price and image at the moment it was added, so later product edits do
// not silently change what the user agreed to pay.
type CartItem struct {
	ID        uuid.UUID // The unique ID for this cart line.
	UserID    uuid.UUID // The cart owner. Each user has at most one line per product.
	ProductID uuid.UUID // The referenced product. May be stale by checkout time.
	Name      string    // Product name snapshot.
	Price     float64   // Unit price snapshot; checkout totals use this, not the live price.
	ImageURL  string    // Product image snapshot.
	Quantity  int       // Requested units, at least 1.
	CreatedAt time.Time // Timestamp of when the line was added.
	UpdatedAt time.Time // Timestamp of the last quantity change.
}

// Subtotal returns the line total from the snapshot price.
func (c *CartItem) Subtotal() float64 {
	return c.Price * float64(c.Quantity)
}

// CartTotal sums the subtotals of the given lines.
func CartTotal(items []*CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}

	return total
}
