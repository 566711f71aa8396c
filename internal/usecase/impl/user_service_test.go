package impl

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"greeniecart/config"
	"greeniecart/internal/domain/constants"
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

const (
	testEmail    = "buyer@example.com"
	testPassword = "Str0ng!Pass"
	testContact  = "09123456789"
)

var passcodePattern = regexp.MustCompile(`^\d{6}$`)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
	lockoutStore     *mockService.MockLockoutStore
	mailer           *mockService.MockMailer
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	lockoutStore := mockService.NewMockLockoutStore(t)
	mailer := mockService.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		LockoutStore:     lockoutStore,
		Mailer:           mailer,
		Config:           &config.Config{},
		Logger:           logger,
	})

	return userServiceFixtures{
		service:          svc,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		lockoutStore:     lockoutStore,
		mailer:           mailer,
	}
}

// expectTxPassthrough wires the transaction manager mock to invoke the
// transactional closure against the given repository factory.
func expectTxPassthrough(txManager *mockRepo.MockTransactionManager, ctx context.Context, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// waitForSignal blocks until an async side effect fires or the test times out.
func waitForSignal(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

// assertErrorCode asserts the error carries the given business error code.
func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Greta",
		LastName:  "Lin",
		Contact:   testContact,
		Email:     "  New@Example.COM ",
		Address:   "1 Fern Street",
		Password:  testPassword,
	}

	fx.hasher.EXPECT().Hash(testPassword).Return("hashed-password", nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAuthRepo := mockRepo.NewMockAuthRepository(t)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

	mockUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	mockUserRepo.EXPECT().Count(ctx).Return(41, nil)
	mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = uuid.New()
			return nil
		})
	mockAuthRepo.EXPECT().CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		RunAndReturn(func(_ context.Context, auth *entity.Authentication) error {
			assert.Equal(t, constants.ProviderTypeEmail, auth.Provider)
			assert.Equal(t, "hashed-password", auth.PasswordHash)
			return nil
		})
	expectTxPassthrough(fx.txManager, ctx, mockFactory)

	mailSent := make(chan struct{})
	fx.mailer.EXPECT().SendVerificationMail(mock.Anything, "new@example.com", mock.AnythingOfType("string")).
		RunAndReturn(func(context.Context, string, string) error {
			close(mailSent)
			return nil
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "USER042", output.User.DisplayID)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.False(t, output.User.EmailVerified)
	assert.NotEmpty(t, output.User.VerifyToken)
	waitForSignal(t, mailSent, "verification mail")
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Greta",
		LastName:  "Lin",
		Contact:   testContact,
		Email:     testEmail,
		Password:  testPassword,
	}

	fx.hasher.EXPECT().Hash(testPassword).Return("hashed-password", nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAuthRepo := mockRepo.NewMockAuthRepository(t)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
	mockUserRepo.EXPECT().FindByEmail(ctx, testEmail).Return(&entity.User{ID: uuid.New()}, nil)
	expectTxPassthrough(fx.txManager, ctx, mockFactory)

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.RegisterInput{
		FirstName: "Greta",
		LastName:  "Lin",
		Contact:   testContact,
		Email:     testEmail,
		Password:  "alllowercase",
	}

	_, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assertErrorCode(t, err, "PASSWORD_STRENGTH")
}

func TestUserService_Register_InvalidContact(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.RegisterInput{
		FirstName: "Greta",
		LastName:  "Lin",
		Contact:   "12345",
		Email:     testEmail,
		Password:  testPassword,
	}

	_, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func expectLoginAccount(t *testing.T, fx userServiceFixtures, ctx context.Context, user *entity.User, passwordHash string) {
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAuthRepo := mockRepo.NewMockAuthRepository(t)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
	mockUserRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	mockAuthRepo.EXPECT().FindAuthenticationByUserID(ctx, user.ID, constants.ProviderTypeEmail).
		Return(&entity.Authentication{UserID: user.ID, Provider: constants.ProviderTypeEmail, PasswordHash: passwordHash}, nil)
	expectTxPassthrough(fx.txManager, ctx, mockFactory)
}

func expectSessionIssued(fx userServiceFixtures, ctx context.Context, userID uuid.UUID) {
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: testEmail, EmailVerified: true}

	fx.lockoutStore.EXPECT().GetPasscode(ctx, testEmail).Return("", service.ErrNoPasscode)
	expectLoginAccount(t, fx, ctx, user, "stored-hash")
	fx.hasher.EXPECT().Check(testPassword, "stored-hash").Return(true)
	fx.lockoutStore.EXPECT().ClearFailures(ctx, testEmail).Return(nil)
	expectSessionIssued(fx, ctx, user.ID)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: testEmail, Password: testPassword})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword_BelowThreshold(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: testEmail, EmailVerified: true}

	fx.lockoutStore.EXPECT().GetPasscode(ctx, testEmail).Return("", service.ErrNoPasscode)
	expectLoginAccount(t, fx, ctx, user, "stored-hash")
	fx.hasher.EXPECT().Check("wrong-password", "stored-hash").Return(false)
	fx.lockoutStore.EXPECT().RecordFailure(ctx, testEmail).Return(2, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: testEmail, Password: "wrong-password"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_ThirdFailure_IssuesPasscode(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: testEmail, EmailVerified: true}

	fx.lockoutStore.EXPECT().GetPasscode(ctx, testEmail).Return("", service.ErrNoPasscode)
	expectLoginAccount(t, fx, ctx, user, "stored-hash")
	fx.hasher.EXPECT().Check("wrong-password", "stored-hash").Return(false)
	fx.lockoutStore.EXPECT().RecordFailure(ctx, testEmail).Return(3, nil)

	var issuedCode string
	fx.lockoutStore.EXPECT().StorePasscode(ctx, testEmail, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _, code string) error {
			issuedCode = code
			return nil
		})
	fx.lockoutStore.EXPECT().ClearFailures(ctx, testEmail).Return(nil)
	fx.lockoutStore.EXPECT().StartCooldown(ctx, testEmail).Return(nil)

	mailSent := make(chan struct{})
	fx.mailer.EXPECT().SendPasscodeMail(mock.Anything, testEmail, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _, code string) error {
			assert.Equal(t, issuedCode, code)
			close(mailSent)
			return nil
		})

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: testEmail, Password: "wrong-password"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasscodeRequired))
	assert.Regexp(t, passcodePattern, issuedCode)
	waitForSignal(t, mailSent, "passcode mail")
}

func TestUserService_Login_PendingPasscode_BlocksCorrectPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	// The password is never even checked while a challenge is pending.
	fx.lockoutStore.EXPECT().GetPasscode(ctx, testEmail).Return("123456", nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: testEmail, Password: testPassword})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasscodeRequired))
}

func TestUserService_Login_UnverifiedEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: testEmail, EmailVerified: false, VerifyToken: "pending-token"}

	fx.lockoutStore.EXPECT().GetPasscode(ctx, testEmail).Return("", service.ErrNoPasscode)
	expectLoginAccount(t, fx, ctx, user, "stored-hash")
	fx.hasher.EXPECT().Check(testPassword, "stored-hash").Return(true)

	mailSent := make(chan struct{})
	fx.mailer.EXPECT().SendVerificationMail(mock.Anything, testEmail, "pending-token").
		RunAndReturn(func(context.Context, string, string) error {
			close(mailSent)
			return nil
		})

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: testEmail, Password: testPassword})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailNotVerified))
	waitForSignal(t, mailSent, "verification mail")
}

func TestUserService_VerifyPasscode_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: testEmail, EmailVerified: true}

	fx.lockoutStore.EXPECT().GetPasscode(ctx, testEmail).Return("123456", nil)
	fx.lockoutStore.EXPECT().ClearPasscode(ctx, testEmail).Return(nil)
	fx.lockoutStore.EXPECT().ClearFailures(ctx, testEmail).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, testEmail).Return(user, nil)
	expectSessionIssued(fx, ctx, user.ID)

	output, err := fx.service.VerifyPasscode(ctx, &usecase.VerifyPasscodeInput{Email: testEmail, Passcode: "123456"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_VerifyPasscode_Mismatch_LeavesChallengePending(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	// No ClearPasscode expectation: a wrong guess must not consume the challenge.
	fx.lockoutStore.EXPECT().GetPasscode(ctx, testEmail).Return("123456", nil)

	_, err := fx.service.VerifyPasscode(ctx, &usecase.VerifyPasscodeInput{Email: testEmail, Passcode: "654321"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasscodeInvalid))
}

func TestUserService_VerifyPasscode_NotPending(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.lockoutStore.EXPECT().GetPasscode(ctx, testEmail).Return("", service.ErrNoPasscode)

	_, err := fx.service.VerifyPasscode(ctx, &usecase.VerifyPasscodeInput{Email: testEmail, Passcode: "123456"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasscodeNotPending))
}

func TestUserService_ResendPasscode_Cooldown(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.lockoutStore.EXPECT().GetPasscode(ctx, testEmail).Return("123456", nil)
	fx.lockoutStore.EXPECT().CooldownRemaining(ctx, testEmail).Return(30*time.Second, nil)

	err := fx.service.ResendPasscode(ctx, &usecase.ResendPasscodeInput{Email: testEmail})

	require.Error(t, err)
	assertErrorCode(t, err, "PASSCODE_COOLDOWN")
}

func TestUserService_ResendPasscode_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.lockoutStore.EXPECT().GetPasscode(ctx, testEmail).Return("123456", nil)
	fx.lockoutStore.EXPECT().CooldownRemaining(ctx, testEmail).Return(time.Duration(0), nil)
	fx.lockoutStore.EXPECT().StorePasscode(ctx, testEmail, mock.AnythingOfType("string")).Return(nil)
	fx.lockoutStore.EXPECT().ClearFailures(ctx, testEmail).Return(nil)
	fx.lockoutStore.EXPECT().StartCooldown(ctx, testEmail).Return(nil)

	mailSent := make(chan struct{})
	fx.mailer.EXPECT().SendPasscodeMail(mock.Anything, testEmail, mock.AnythingOfType("string")).
		RunAndReturn(func(context.Context, string, string) error {
			close(mailSent)
			return nil
		})

	err := fx.service.ResendPasscode(ctx, &usecase.ResendPasscodeInput{Email: testEmail})

	require.NoError(t, err)
	waitForSignal(t, mailSent, "passcode mail")
}

func TestUserService_ResendPasscode_NotPending(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.lockoutStore.EXPECT().GetPasscode(ctx, testEmail).Return("", service.ErrNoPasscode)

	err := fx.service.ResendPasscode(ctx, &usecase.ResendPasscodeInput{Email: testEmail})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasscodeNotPending))
}

func TestUserService_VerifyEmail_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: testEmail, VerifyToken: "the-token"}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByVerifyToken(ctx, "the-token").Return(user, nil)
	mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, updated *entity.User) error {
			assert.True(t, updated.EmailVerified)
			assert.Empty(t, updated.VerifyToken)
			return nil
		})
	expectTxPassthrough(fx.txManager, ctx, mockFactory)

	err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{Token: "the-token"})

	require.NoError(t, err)
}

func TestUserService_VerifyEmail_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByVerifyToken(ctx, "bogus").Return(nil, repository.ErrUserNotFound)
	expectTxPassthrough(fx.txManager, ctx, mockFactory)

	err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{Token: "bogus"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerifyTokenInvalid))
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("new-access-token", "unused-refresh", nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
	mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)
	mockRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "refresh-hash"}, nil)
	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	expectTxPassthrough(fx.txManager, ctx, mockFactory)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestUserService_RefreshToken_Invalid(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_RefreshToken_Expired(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	mockFactory.EXPECT().NewUserRepository().Return(mockRepo.NewMockUserRepository(t))
	mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)
	mockRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(nil, repository.ErrRefreshTokenExpired)
	expectTxPassthrough(fx.txManager, ctx, mockFactory)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenExpired))
}

func TestUserService_RefreshToken_Revoked(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	mockFactory.EXPECT().NewUserRepository().Return(mockRepo.NewMockUserRepository(t))
	mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)
	mockRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)
	expectTxPassthrough(fx.txManager, ctx, mockFactory)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
}

func TestUserService_Logout_AlreadyGone_IsIdempotent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
}
