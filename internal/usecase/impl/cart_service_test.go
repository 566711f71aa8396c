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
	"greeniecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service   usecase.CartUsecase
	txManager *mockRepo.MockTransactionManager
	cartRepo  *mockRepo.MockCartRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCartService(CartServiceParams{
		TxManager: txManager,
		CartRepo:  cartRepo,
		Logger:    logger,
	})

	return cartServiceFixtures{
		service:   svc,
		txManager: txManager,
		cartRepo:  cartRepo,
	}
}

func TestCartService_List_TotalsSnapshotPrices(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		{ID: uuid.New(), UserID: userID, Price: 100, Quantity: 2},
		{ID: uuid.New(), UserID: userID, Price: 50, Quantity: 1},
	}
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(items, nil)

	output, err := fx.service.List(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, output.Items, 2)
	assert.InDelta(t, 250.0, output.Total, 0.001)
}

func TestCartService_AddItem_Success_SnapshotsProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{
		ID:        uuid.New(),
		Name:      "Bamboo Cup",
		Price:     120,
		Stock:     5,
		ImageURL:  "https://cdn.example.com/products/a/1.png",
		CreatedBy: uuid.New(),
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
	mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
	mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	mockCartRepo.EXPECT().FindByUserAndProduct(ctx, userID, product.ID).Return(nil, repository.ErrCartItemNotFound)
	mockCartRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CartItem")).
		RunAndReturn(func(_ context.Context, item *entity.CartItem) error {
			item.ID = uuid.New()
			return nil
		})
	expectTxPassthrough(fx.txManager, ctx, mockFactory)

	item, err := fx.service.AddItem(ctx, userID, &usecase.AddCartItemInput{ProductID: product.ID, Quantity: 2})

	require.NoError(t, err)
	assert.Equal(t, "Bamboo Cup", item.Name)
	assert.InDelta(t, 120.0, item.Price, 0.001)
	assert.Equal(t, product.ImageURL, item.ImageURL)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartService_AddItem_OwnProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Bamboo Cup", Price: 120, Stock: 5, CreatedBy: userID}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
	mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
	mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	expectTxPassthrough(fx.txManager, ctx, mockFactory)

	_, err := fx.service.AddItem(ctx, userID, &usecase.AddCartItemInput{ProductID: product.ID, Quantity: 1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnProductInCart))
}

func TestCartService_AddItem_Duplicate(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Bamboo Cup", Price: 120, Stock: 5, CreatedBy: uuid.New()}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
	mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
	mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	mockCartRepo.EXPECT().FindByUserAndProduct(ctx, userID, product.ID).
		Return(&entity.CartItem{ID: uuid.New(), UserID: userID, ProductID: product.ID}, nil)
	expectTxPassthrough(fx.txManager, ctx, mockFactory)

	_, err := fx.service.AddItem(ctx, userID, &usecase.AddCartItemInput{ProductID: product.ID, Quantity: 1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductAlreadyInCart))
}

func TestCartService_AddItem_InsufficientStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Seed Kit", Price: 50, Stock: 2, CreatedBy: uuid.New()}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
	mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
	mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	mockCartRepo.EXPECT().FindByUserAndProduct(ctx, userID, product.ID).Return(nil, repository.ErrCartItemNotFound)
	expectTxPassthrough(fx.txManager, ctx, mockFactory)

	_, err := fx.service.AddItem(ctx, userID, &usecase.AddCartItemInput{ProductID: product.ID, Quantity: 5})

	require.Error(t, err)
	assertErrorCode(t, err, "INSUFFICIENT_STOCK")
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), uuid.New(), &usecase.AddCartItemInput{ProductID: uuid.New(), Quantity: 0})

	require.Error(t, err)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestCartService_UpdateItem_OtherUsersLine_HiddenAsNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	itemID := uuid.New()
	fx.cartRepo.EXPECT().FindByID(ctx, itemID).
		Return(&entity.CartItem{ID: itemID, UserID: uuid.New(), Quantity: 1}, nil)

	_, err := fx.service.UpdateItem(ctx, uuid.New(), &usecase.UpdateCartItemInput{ItemID: itemID, Quantity: 3})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_UpdateItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	fx.cartRepo.EXPECT().FindByID(ctx, itemID).
		Return(&entity.CartItem{ID: itemID, UserID: userID, Quantity: 1}, nil)
	fx.cartRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.CartItem")).Return(nil)

	item, err := fx.service.UpdateItem(ctx, userID, &usecase.UpdateCartItemInput{ItemID: itemID, Quantity: 3})

	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	fx.cartRepo.EXPECT().FindByID(ctx, itemID).
		Return(&entity.CartItem{ID: itemID, UserID: userID}, nil)
	fx.cartRepo.EXPECT().Delete(ctx, itemID).Return(nil)

	err := fx.service.RemoveItem(ctx, userID, itemID)

	require.NoError(t, err)
}
