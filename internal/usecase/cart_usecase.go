package usecase

import (
	"context"

	"greeniecart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddCartItemInput defines the data required to add a product to the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemInput defines the data required to change a cart line's quantity.
type UpdateCartItemInput struct {
	ItemID   uuid.UUID `json:"-"`
	Quantity int       `json:"quantity" validate:"required,min=1"`
}

// --- Output DTOs ---

// CartOutput returns a user's cart lines along with the running total.
type CartOutput struct {
	Items []*entity.CartItem
	Total float64
}

// CartUsecase defines the interface for personal cart business operations.
// Every operation is scoped to the acting user's own cart.
type CartUsecase interface {
	List(ctx context.Context, userID uuid.UUID) (*CartOutput, error)

	// AddItem puts a product into the cart, snapshotting its name, price and
	// image. A user cannot add their own product or the same product twice.
	AddItem(ctx context.Context, userID uuid.UUID, input *AddCartItemInput) (*entity.CartItem, error)

	// UpdateItem changes the quantity of an existing cart line.
	UpdateItem(ctx context.Context, userID uuid.UUID, input *UpdateCartItemInput) (*entity.CartItem, error)

	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
}
