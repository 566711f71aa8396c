package usecase

import (
	"context"

	"greeniecart/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines read access to a user's immutable order history.
type OrderUsecase interface {
	// List returns the user's orders, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// Get returns one order. Orders belonging to other users surface as not
	// found rather than forbidden, so order IDs cannot be probed.
	Get(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// GetQR renders the order's receipt QR code as a PNG.
	GetQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)
}
