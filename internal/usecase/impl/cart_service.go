package impl

import (
	"context"
	"log/slog"

	deliverycontext "greeniecart/internal/delivery/context"
	"greeniecart/internal/domain/entity"
	domainerrors "greeniecart/internal/domain/errors"
	"greeniecart/internal/domain/repository"
	"greeniecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the user's cart lines along with the running total.
func (srv *cartService) List(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	items, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return &usecase.CartOutput{
		Items: items,
		Total: entity.CartTotal(items),
	}, nil
}

// AddItem puts a product into the cart, snapshotting its name, price and image.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddCartItemInput) (*entity.CartItem, error) {
	srv.log(ctx).Info("Adding product to cart", slog.Any("userID", userID), slog.Any("productID", input.ProductID))

	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	var created *entity.CartItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		cartRepo := repoFactory.NewCartRepository()

		product, err := productRepo.FindByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		// A seller never buys from themselves.
		if product.OwnedBy(userID) {
			return domainerrors.ErrOwnProductInCart
		}

		if _, err := cartRepo.FindByUserAndProduct(ctx, userID, input.ProductID); err == nil {
			return domainerrors.ErrProductAlreadyInCart
		} else if !errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(err, "failed to check existing cart line")
		}

		if !product.InStock() {
			return domainerrors.ErrProductOutOfStock
		}
		if input.Quantity > product.Stock {
			return domainerrors.NewInsufficientStockError(product.Name, product.Stock, input.Quantity)
		}

		// Snapshot the listing at add time so seller edits do not rewrite carts.
		item := &entity.CartItem{
			UserID:    userID,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Quantity:  input.Quantity,
		}
		if err := cartRepo.Create(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create cart line")
		}

		created = item

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Add to cart failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return created, nil
}

// UpdateItem changes the quantity of an existing cart line.
func (srv *cartService) UpdateItem(ctx context.Context, userID uuid.UUID, input *usecase.UpdateCartItemInput) (*entity.CartItem, error) {
	srv.log(ctx).Debug("Updating cart line", slog.Any("userID", userID), slog.Any("itemID", input.ItemID))

	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	item, err := srv.loadOwnedItem(ctx, userID, input.ItemID)
	if err != nil {
		return nil, err
	}

	item.Quantity = input.Quantity
	if err := srv.cartRepo.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update cart line")
	}

	return item, nil
}

// RemoveItem deletes a cart line.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	srv.log(ctx).Debug("Removing cart line", slog.Any("userID", userID), slog.Any("itemID", itemID))

	if _, err := srv.loadOwnedItem(ctx, userID, itemID); err != nil {
		return err
	}

	if err := srv.cartRepo.Delete(ctx, itemID); err != nil {
		return errors.Wrap(err, "failed to delete cart line")
	}

	return nil
}

// loadOwnedItem fetches a cart line and hides other users' lines behind not
// found, so cart IDs cannot be probed.
func (srv *cartService) loadOwnedItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	item, err := srv.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line")
	}
	if item.UserID != userID {
		return nil, domainerrors.ErrCartItemNotFound
	}

	return item, nil
}
