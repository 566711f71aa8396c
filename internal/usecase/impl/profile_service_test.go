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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    logger,
	})

	return profileServiceFixtures{
		service:   svc,
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := &entity.User{ID: userID, DisplayID: "USER007", Email: "buyer@example.com"}
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(expected, nil)

	user, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileService_UpdateProfile_PatchesFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:        userID,
		DisplayID: "USER007",
		FirstName: "Greta",
		LastName:  "Lin",
		Contact:   "09123456789",
		Email:     "buyer@example.com",
		Address:   "1 Fern Street",
	}

	firstName := "Margaret"
	address := "2 Moss Lane"
	input := &usecase.UpdateProfileInput{FirstName: &firstName, Address: &address}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	expectTxPassthrough(fx.txManager, ctx, mockFactory)

	user, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Margaret", user.FirstName)
	assert.Equal(t, "Lin", user.LastName)
	assert.Equal(t, "2 Moss Lane", user.Address)
	// Identity fields never change through the profile page.
	assert.Equal(t, "buyer@example.com", user.Email)
	assert.Equal(t, "USER007", user.DisplayID)
}

func TestProfileService_UpdateProfile_InvalidContact(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	badContact := "12345"
	input := &usecase.UpdateProfileInput{Contact: &badContact}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	expectTxPassthrough(fx.txManager, ctx, mockFactory)

	_, err := fx.service.UpdateProfile(ctx, userID, input)

	require.Error(t, err)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestProfileService_UpdateProfile_EmptyFirstName(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	blank := "  "
	input := &usecase.UpdateProfileInput{FirstName: &blank}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	expectTxPassthrough(fx.txManager, ctx, mockFactory)

	_, err := fx.service.UpdateProfile(ctx, userID, input)

	require.Error(t, err)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}
