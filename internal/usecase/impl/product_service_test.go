package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"greeniecart/internal/domain/entity"
	domainerrors "greeniecart/internal/domain/errors"
	"greeniecart/internal/domain/repository"
	mockRepo "greeniecart/internal/mocks/repository"
	mockService "greeniecart/internal/mocks/service"
	"greeniecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	objectStore *mockService.MockObjectStore
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	objectStore := mockService.NewMockObjectStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		ObjectStore: objectStore,
		Logger:      logger,
	})

	return productServiceFixtures{
		service:     svc,
		productRepo: productRepo,
		objectStore: objectStore,
	}
}

func testImage() *usecase.ProductImageInput {
	return &usecase.ProductImageInput{
		Filename:    "leaf.png",
		ContentType: "image/png",
		Size:        1024,
		Content:     strings.NewReader("png-bytes"),
	}
}

func TestProductService_Create_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateProductInput{
		Name:  " Bamboo Cup ",
		Price: 120,
		Stock: 5,
		Image: testImage(),
	}

	keyPrefix := "products/" + userID.String() + "/"
	fx.objectStore.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, keyPrefix) && strings.HasSuffix(key, "_leaf.png")
		}), "image/png", mock.Anything).
		Return("https://cdn.example.com/products/abc/1_leaf.png", nil)

	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			product.ID = uuid.New()
			return nil
		})

	product, err := fx.service.Create(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Bamboo Cup", product.Name)
	assert.Equal(t, userID, product.CreatedBy)
	assert.Equal(t, "https://cdn.example.com/products/abc/1_leaf.png", product.ImageURL)
}

func TestProductService_Create_MissingImage(t *testing.T) {
	fx := createTestProductService(t)

	input := &usecase.CreateProductInput{Name: "Bamboo Cup", Price: 120, Stock: 5}

	_, err := fx.service.Create(context.Background(), uuid.New(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductImageRequired))
}

func TestProductService_Create_RejectsNonImageUpload(t *testing.T) {
	fx := createTestProductService(t)

	image := testImage()
	image.ContentType = "application/pdf"
	input := &usecase.CreateProductInput{Name: "Bamboo Cup", Price: 120, Stock: 5, Image: image}

	_, err := fx.service.Create(context.Background(), uuid.New(), input)

	require.Error(t, err)
	assertErrorCode(t, err, "PRODUCT_IMAGE_INVALID")
}

func TestProductService_Create_RejectsOversizedImage(t *testing.T) {
	fx := createTestProductService(t)

	image := testImage()
	image.Size = 6 << 20
	input := &usecase.CreateProductInput{Name: "Bamboo Cup", Price: 120, Stock: 5, Image: image}

	_, err := fx.service.Create(context.Background(), uuid.New(), input)

	require.Error(t, err)
	assertErrorCode(t, err, "PRODUCT_IMAGE_INVALID")
}

func TestProductService_Create_InvalidPrice(t *testing.T) {
	fx := createTestProductService(t)

	input := &usecase.CreateProductInput{Name: "Bamboo Cup", Price: 0, Stock: 5, Image: testImage()}

	_, err := fx.service.Create(context.Background(), uuid.New(), input)

	require.Error(t, err)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestProductService_Update_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	input := &usecase.UpdateProductInput{ID: productID, Name: "Bamboo Cup", Price: 120, Stock: 5}

	fx.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Bamboo Cup", CreatedBy: uuid.New()}, nil)

	_, err := fx.service.Update(ctx, userID, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))
}

func TestProductService_Update_ReplacesImage(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	oldURL := "https://cdn.example.com/products/" + userID.String() + "/1_old.png"
	input := &usecase.UpdateProductInput{ID: productID, Name: "Bamboo Cup", Price: 150, Stock: 4, Image: testImage()}

	fx.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Bamboo Cup", Price: 120, Stock: 5, ImageURL: oldURL, CreatedBy: userID}, nil)
	fx.objectStore.EXPECT().Upload(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Return("https://cdn.example.com/products/"+userID.String()+"/2_leaf.png", nil)
	fx.productRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	deleted := make(chan string, 1)
	fx.objectStore.EXPECT().Delete(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, key string) error {
			deleted <- key
			return nil
		})

	product, err := fx.service.Update(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/"+userID.String()+"/2_leaf.png", product.ImageURL)
	assert.InDelta(t, 150.0, product.Price, 0.001)

	select {
	case key := <-deleted:
		assert.Equal(t, "products/"+userID.String()+"/1_old.png", key)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for old image cleanup")
	}
}

func TestProductService_Update_KeepsImageWhenNoneUploaded(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	input := &usecase.UpdateProductInput{ID: productID, Name: "Bamboo Cup", Price: 150, Stock: 4}

	fx.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Bamboo Cup", Price: 120, Stock: 5, ImageURL: "https://cdn.example.com/products/a/1.png", CreatedBy: userID}, nil)
	fx.productRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.Update(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/a/1.png", product.ImageURL)
}

func TestProductService_Delete_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, ImageURL: "https://cdn.example.com/products/a/1.png", CreatedBy: userID}, nil)
	fx.productRepo.EXPECT().Delete(ctx, productID).Return(nil)

	deleted := make(chan struct{})
	fx.objectStore.EXPECT().Delete(mock.Anything, "products/a/1.png").
		RunAndReturn(func(context.Context, string) error {
			close(deleted)
			return nil
		})

	err := fx.service.Delete(ctx, userID, productID)

	require.NoError(t, err)
	select {
	case <-deleted:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for image cleanup")
	}
}

func TestProductService_Delete_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, CreatedBy: uuid.New()}, nil)

	err := fx.service.Delete(ctx, uuid.New(), productID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))
}

func TestProductService_Get_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Get(ctx, productID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_List_TrimsSearch(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	expected := []*entity.Product{{ID: uuid.New(), Name: "Bamboo Cup"}}
	fx.productRepo.EXPECT().FindAll(ctx, "bamboo").Return(expected, nil)

	products, err := fx.service.List(ctx, "  bamboo  ")

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}
