package usecase

import (
	"context"

	"greeniecart/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutUsecase converts a cart into an immutable order.
type CheckoutUsecase interface {
	// Checkout validates the cart against live stock, decrements stock per
	// item, writes the order and clears the cart. It fails before touching
	// stock when any line cannot be satisfied, naming the offending product.
	Checkout(ctx context.Context, userID uuid.UUID) (*entity.Order, error)
}
