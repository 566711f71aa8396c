package impl

import (
	"context"
	"log/slog"
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

// checkoutService implements the CheckoutUsecase interface.
//
// Checkout deliberately does not wrap stock decrements in one transaction:
// each decrement is an atomic guarded update, applied sequentially. A failure
// partway aborts without compensating earlier decrements; the upfront
// validation pass makes that window small.
type checkoutService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the user's cart into an immutable order.
func (srv *checkoutService) Checkout(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	srv.log(ctx).Info("Starting checkout", slog.Any("userID", userID))

	items, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for checkout")
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	// Pass 1: validate every line against live stock before touching anything.
	// A failure here is side-effect free and names the offending product.
	if err := srv.validateCart(ctx, items); err != nil {
		srv.log(ctx).Warn("Checkout validation failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	// Pass 2: apply guarded decrements one line at a time. Stock may have
	// moved since validation, so each decrement can still refuse.
	for _, item := range items {
		applied, err := srv.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decrement stock")
		}
		if !applied {
			failure := srv.explainDecrementFailure(ctx, item)
			srv.log(ctx).Warn("Checkout aborted mid-decrement", slog.Any("userID", userID), slog.Any("error", failure))

			return nil, failure
		}
	}

	// Totals come from the cart snapshot prices, not the live listings.
	order := &entity.Order{
		UserID: userID,
		Items:  buildOrderItems(items),
		Total:  entity.CartTotal(items),
	}
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	if err := srv.cartRepo.DeleteByIDs(ctx, ids); err != nil {
		// The order exists; a stale cart is recoverable, a lost order is not.
		srv.log(ctx).Error("Failed to clear cart after checkout", slog.Any("orderID", order.ID), slog.Any("error", err))
	}

	srv.publishOrderPlaced(ctx, order)

	srv.log(ctx).Info("Checkout completed", slog.Any("orderID", order.ID), slog.Float64("total", order.Total))

	return order, nil
}

// validateCart is the read-only first pass over the cart.
func (srv *checkoutService) validateCart(ctx context.Context, items []*entity.CartItem) error {
	for _, item := range items {
		product, err := srv.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.NewProductGoneError(item.Name)
			}

			return errors.Wrap(err, "failed to validate cart line")
		}
		if product.Stock < item.Quantity {
			return domainerrors.NewInsufficientStockError(product.Name, product.Stock, item.Quantity)
		}
	}

	return nil
}

// explainDecrementFailure re-reads the product to name the reason a guarded
// decrement refused.
func (srv *checkoutService) explainDecrementFailure(ctx context.Context, item *entity.CartItem) error {
	product, err := srv.productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.NewProductGoneError(item.Name)
		}

		return errors.Wrap(err, "failed to re-check product after refused decrement")
	}

	return domainerrors.NewInsufficientStockError(product.Name, product.Stock, item.Quantity)
}

// publishOrderPlaced emits the order event without blocking or failing checkout.
func (srv *checkoutService) publishOrderPlaced(ctx context.Context, order *entity.Order) {
	event := &service.OrderPlacedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:   order.ID.String(),
		UserID:    order.UserID.String(),
		Total:     order.Total,
		ItemCount: len(order.Items),
		CreatedAt: time.Now().UTC(),
	}

	logger := srv.log(ctx)
	publishCtx := context.WithoutCancel(ctx)

	go func() {
		if err := srv.publisher.PublishOrderPlaced(publishCtx, event); err != nil {
			logger.Error("Failed to publish order event", slog.String("orderID", event.OrderID), slog.Any("error", err))
		}
	}()
}

func buildOrderItems(items []*entity.CartItem) []entity.OrderItem {
	orderItems := make([]entity.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
		})
	}

	return orderItems
}
