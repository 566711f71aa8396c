// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"greeniecart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product does not exist.
// A cart line can outlive its product, so callers must treat this as a
// normal outcome, not a storage fault.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAll retrieves every product in the shared catalog, newest first.
	// A non-empty search narrows by name substring.
	FindAll(ctx context.Context, search string) ([]*entity.Product, error)

	// FindByCreator retrieves the products listed by one user, newest first.
	FindByCreator(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)

	// Create persists a new product listing.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product listing.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product listing.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically subtracts quantity from the product's stock,
	// guarded so stock never goes negative. It reports whether the decrement
	// was applied; false means the product vanished or had too little stock.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error)
}
