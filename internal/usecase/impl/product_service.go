package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	deliverycontext "greeniecart/internal/delivery/context"
	"greeniecart/internal/domain/entity"
	domainerrors "greeniecart/internal/domain/errors"
	"greeniecart/internal/domain/repository"
	"greeniecart/internal/domain/service"
	"greeniecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxProductImageSize caps uploads at 5 MB.
const maxProductImageSize = 5 << 20

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	objectStore service.ObjectStore
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ObjectStore service.ObjectStore
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		objectStore: params.ObjectStore,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the shared marketplace, optionally filtered by a name search.
func (srv *productService) List(ctx context.Context, search string) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListMine returns the products the given user has listed.
func (srv *productService) ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByCreator(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own products")
	}

	return products, nil
}

// Get retrieves one product from the marketplace.
func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// Create validates and stores a new listing with its image.
func (srv *productService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.Any("userID", userID), slog.String("name", input.Name))

	if err := validateProductFields(input.Name, input.Price, input.Stock); err != nil {
		return nil, err
	}
	if input.Image == nil {
		return nil, domainerrors.ErrProductImageRequired
	}
	if err := validateProductImage(input.Image); err != nil {
		return nil, err
	}

	imageURL, err := srv.uploadImage(ctx, userID, input.Image)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:      strings.TrimSpace(input.Name),
		Price:     input.Price,
		Stock:     input.Stock,
		ImageURL:  imageURL,
		CreatedBy: userID,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// Update edits a listing. Only the owner may edit it; a new image replaces
// the current one.
func (srv *productService) Update(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Any("userID", userID), slog.Any("productID", input.ID))

	if err := validateProductFields(input.Name, input.Price, input.Stock); err != nil {
		return nil, err
	}

	product, err := srv.loadOwnedProduct(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}

	oldImageURL := product.ImageURL
	if input.Image != nil {
		if err := validateProductImage(input.Image); err != nil {
			return nil, err
		}
		imageURL, err := srv.uploadImage(ctx, userID, input.Image)
		if err != nil {
			return nil, err
		}
		product.ImageURL = imageURL
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Price = input.Price
	product.Stock = input.Stock

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	if input.Image != nil && oldImageURL != "" && oldImageURL != product.ImageURL {
		srv.deleteImageAsync(ctx, oldImageURL)
	}

	return product, nil
}

// Delete removes a listing. Only the owner may delete it.
func (srv *productService) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", slog.Any("userID", userID), slog.Any("productID", productID))

	product, err := srv.loadOwnedProduct(ctx, userID, productID)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	if product.ImageURL != "" {
		srv.deleteImageAsync(ctx, product.ImageURL)
	}

	return nil
}

// --- Helpers ---

func (srv *productService) loadOwnedProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	// Ownership is enforced here, not in the handler, so every caller gets
	// the same check.
	if !product.OwnedBy(userID) {
		srv.log(ctx).Warn("Ownership violation", slog.Any("userID", userID), slog.Any("productID", productID))

		return nil, domainerrors.ErrProductOwnershipViolation
	}

	return product, nil
}

func (srv *productService) uploadImage(ctx context.Context, userID uuid.UUID, image *usecase.ProductImageInput) (string, error) {
	key := fmt.Sprintf("products/%s/%d_%s", userID, time.Now().UnixMilli(), sanitizeFilename(image.Filename))

	imageURL, err := srv.objectStore.Upload(ctx, key, image.ContentType, image.Content)
	if err != nil {
		srv.log(ctx).Error("Image upload failed", slog.String("key", key), slog.Any("error", err))

		return "", domainerrors.ErrProductImageUploadFailed.WrapMessage(err.Error())
	}

	return imageURL, nil
}

// deleteImageAsync removes a superseded image object without blocking the
// request; a leaked object is preferable to a failed edit.
func (srv *productService) deleteImageAsync(ctx context.Context, imageURL string) {
	key := objectKeyFromURL(imageURL)
	if key == "" {
		return
	}

	logger := srv.log(ctx)
	cleanupCtx := context.WithoutCancel(ctx)

	go func() {
		if err := srv.objectStore.Delete(cleanupCtx, key); err != nil {
			logger.Warn("Failed to delete old product image", slog.String("key", key), slog.Any("error", err))
		}
	}()
}

func validateProductFields(name string, price float64, stock int) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}
	if price <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must be greater than zero")
	}
	if stock < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("stock cannot be negative")
	}

	return nil
}

func validateProductImage(image *usecase.ProductImageInput) error {
	if !strings.HasPrefix(image.ContentType, "image/") {
		return domainerrors.ErrProductImageInvalid.WithDetails("only image uploads are accepted")
	}
	if image.Size > maxProductImageSize {
		return domainerrors.ErrProductImageInvalid.WithDetails("image exceeds the 5MB limit")
	}

	return nil
}

// sanitizeFilename strips any path components from an uploaded filename.
func sanitizeFilename(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "image"
	}

	return base
}

// objectKeyFromURL recovers the bucket key from a public image URL.
func objectKeyFromURL(imageURL string) string {
	idx := strings.Index(imageURL, "/products/")
	if idx < 0 {
		return ""
	}

	return imageURL[idx+1:]
}
