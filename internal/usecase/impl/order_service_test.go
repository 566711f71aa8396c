package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"greeniecart/internal/domain/entity"
	domainerrors "greeniecart/internal/domain/errors"
	"greeniecart/internal/domain/repository"
	mockRepo "greeniecart/internal/mocks/repository"
	mockService "greeniecart/internal/mocks/service"
	"greeniecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	qrService *mockService.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	qrService := mockService.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		QRService: qrService,
		Logger:    logger,
	})

	return orderServiceFixtures{
		service:   svc,
		orderRepo: orderRepo,
		qrService: qrService,
	}
}

func TestOrderService_List_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Order{{ID: uuid.New(), UserID: userID, Total: 200}}
	fx.orderRepo.EXPECT().FindByUserID(ctx, userID).Return(expected, nil)

	orders, err := fx.service.List(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrderService_Get_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID, Total: 200}
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	got, err := fx.service.Get(ctx, userID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_Get_OtherUsersOrder_HiddenAsNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.Get(ctx, uuid.New(), order.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_Get_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.Get(ctx, uuid.New(), orderID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_GetQR_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID}
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.qrService.EXPECT().GenerateOrderQR(order.ID).Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.GetQR(ctx, userID, order.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestOrderService_GetQR_OtherUsersOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.GetQR(ctx, uuid.New(), order.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
