// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a marketplace listing. Every authenticated user sees every
// product; only the creator may modify or delete one.
type Product struct {
	ID        uuid.UUID // The unique ID for this listing.
	Name      string    // Display name shown in the catalog.
	Price     float64   // Unit price, strictly positive.
	Stock     int       // Units available, never negative. Decreases only through checkout.
	ImageURL  string    // Public URL of the uploaded product image.
	CreatedBy uuid.UUID // The user who listed this product.
	CreatedAt time.Time // Timestamp of when the listing was created.
	UpdatedAt time.Time // Timestamp of the last edit.
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// OwnedBy reports whether the given user created this listing.
func (p *Product) OwnedBy(userID uuid.UUID) bool {
	return p.CreatedBy == userID
}
