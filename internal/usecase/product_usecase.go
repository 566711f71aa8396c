package usecase

import (
	"context"
	"io"

	"greeniecart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ProductImageInput carries an uploaded product image.
type ProductImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// CreateProductInput defines the data required to list a new product.
type CreateProductInput struct {
	Name  string  `validate:"required"`
	Price float64 `validate:"required,gt=0"`
	Stock int     `validate:"min=0"`
	Image *ProductImageInput
}

// UpdateProductInput defines the data for editing an existing listing.
// Image is optional; when nil the current image is kept.
type UpdateProductInput struct {
	ID    uuid.UUID `validate:"required"`
	Name  string    `validate:"required"`
	Price float64   `validate:"required,gt=0"`
	Stock int       `validate:"min=0"`
	Image *ProductImageInput
}

// ProductUsecase defines the interface for product catalog business operations.
type ProductUsecase interface {
	// List returns every product in the shared marketplace, optionally
	// filtered by a name search.
	List(ctx context.Context, search string) ([]*entity.Product, error)

	// ListMine returns the products the given user has listed.
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)

	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	Create(ctx context.Context, userID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// Update edits a listing. Only the owner may edit it.
	Update(ctx context.Context, userID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// Delete removes a listing. Only the owner may delete it.
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}
