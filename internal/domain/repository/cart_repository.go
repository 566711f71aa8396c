// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"greeniecart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart line does not exist.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the standard operations for cart persistence.
// Carts are private: every operation is scoped to one user.
type CartRepository interface {
	// FindByID retrieves a single cart line by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)

	// FindByUserID retrieves all of a user's cart lines, oldest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// FindByUserAndProduct retrieves the user's line for a product, if any.
	// Each user holds at most one line per product.
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error)

	// Create persists a new cart line.
	Create(ctx context.Context, item *entity.CartItem) error

	// Update modifies an existing cart line.
	Update(ctx context.Context, item *entity.CartItem) error

	// Delete removes a single cart line.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByIDs removes the given cart lines in one batched statement.
	// Checkout uses this to clear the purchased lines together.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error
}
