package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"greeniecart/internal/domain/entity"
	domainerrors "greeniecart/internal/domain/errors"
	"greeniecart/internal/domain/repository"
	"greeniecart/internal/domain/service"
	mockRepo "greeniecart/internal/mocks/repository"
	mockService "greeniecart/internal/mocks/service"
	"greeniecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout tests.
type checkoutServiceFixtures struct {
	service     usecase.CheckoutUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	publisher   *mockService.MockEventPublisher
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCheckoutService(CheckoutServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
		Publisher:   publisher,
		Logger:      logger,
	})

	return checkoutServiceFixtures{
		service:     svc,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		publisher:   publisher,
	}
}

func cartLine(userID uuid.UUID, name string, price float64, quantity int) *entity.CartItem {
	return &entity.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: uuid.New(),
		Name:      name,
		Price:     price,
		ImageURL:  "https://cdn.example.com/products/" + name + ".png",
		Quantity:  quantity,
	}
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := cartLine(userID, "bamboo-cup", 100, 2)

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return([]*entity.CartItem{item}, nil)

	// The live listing costs more than the snapshot; the snapshot price wins.
	liveProduct := &entity.Product{ID: item.ProductID, Name: "bamboo-cup", Price: 120, Stock: 5}
	fx.productRepo.EXPECT().FindByID(ctx, item.ProductID).Return(liveProduct, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, item.ProductID, 2).Return(true, nil)

	orderID := uuid.New()
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			order.ID = orderID
			return nil
		})
	fx.cartRepo.EXPECT().DeleteByIDs(ctx, []uuid.UUID{item.ID}).Return(nil)

	published := make(chan *service.OrderPlacedEvent, 1)
	fx.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.AnythingOfType("*service.OrderPlacedEvent")).
		RunAndReturn(func(_ context.Context, event *service.OrderPlacedEvent) error {
			published <- event
			return nil
		})

	order, err := fx.service.Checkout(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, userID, order.UserID)
	assert.InDelta(t, 200.0, order.Total, 0.001)
	require.Len(t, order.Items, 1)
	assert.Equal(t, item.ProductID, order.Items[0].ProductID)
	assert.InDelta(t, 100.0, order.Items[0].Price, 0.001)
	assert.Equal(t, 2, order.Items[0].Quantity)

	select {
	case event := <-published:
		assert.Equal(t, orderID.String(), event.OrderID)
		assert.Equal(t, userID.String(), event.UserID)
		assert.InDelta(t, 200.0, event.Total, 0.001)
		assert.Equal(t, 1, event.ItemCount)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for order event")
	}
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, nil)

	_, err := fx.service.Checkout(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestCheckoutService_Checkout_InsufficientStock_NamesProduct(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := cartLine(userID, "seed-kit", 50, 3)

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return([]*entity.CartItem{item}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, item.ProductID).
		Return(&entity.Product{ID: item.ProductID, Name: "seed-kit", Price: 50, Stock: 1}, nil)

	// No DecrementStock expectation: validation failure must be side-effect free.
	_, err := fx.service.Checkout(ctx, userID)

	require.Error(t, err)
	assertErrorCode(t, err, "INSUFFICIENT_STOCK")
	assert.Contains(t, err.Error(), "seed-kit")
}

func TestCheckoutService_Checkout_ProductGone(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := cartLine(userID, "clay-pot", 30, 1)

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return([]*entity.CartItem{item}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, item.ProductID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Checkout(ctx, userID)

	require.Error(t, err)
	assertErrorCode(t, err, "PRODUCT_GONE")
	assert.Contains(t, err.Error(), "clay-pot")
}

func TestCheckoutService_Checkout_MidFlightRefusal_Aborts(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	first := cartLine(userID, "bamboo-cup", 100, 1)
	second := cartLine(userID, "seed-kit", 50, 2)

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return([]*entity.CartItem{first, second}, nil)

	// Validation sees enough stock for both lines.
	fx.productRepo.EXPECT().FindByID(ctx, first.ProductID).
		Return(&entity.Product{ID: first.ProductID, Name: "bamboo-cup", Stock: 3}, nil).Once()
	fx.productRepo.EXPECT().FindByID(ctx, second.ProductID).
		Return(&entity.Product{ID: second.ProductID, Name: "seed-kit", Stock: 2}, nil).Once()

	// A concurrent checkout drains the second product between validation and
	// decrement. The first decrement stands; no order is written.
	fx.productRepo.EXPECT().DecrementStock(ctx, first.ProductID, 1).Return(true, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, second.ProductID, 2).Return(false, nil)
	fx.productRepo.EXPECT().FindByID(ctx, second.ProductID).
		Return(&entity.Product{ID: second.ProductID, Name: "seed-kit", Stock: 0}, nil).Once()

	_, err := fx.service.Checkout(ctx, userID)

	require.Error(t, err)
	assertErrorCode(t, err, "INSUFFICIENT_STOCK")
	assert.Contains(t, err.Error(), "seed-kit")
}
