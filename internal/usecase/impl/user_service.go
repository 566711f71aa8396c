// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"strings"
	"time"
	"unicode"

	"greeniecart/config"
	deliverycontext "greeniecart/internal/delivery/context"
	"greeniecart/internal/domain/constants"
	"greeniecart/internal/domain/entity"
	domainerrors "greeniecart/internal/domain/errors"
	"greeniecart/internal/domain/repository"
	"greeniecart/internal/domain/service"
	"greeniecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxLoginAttempts = 3
	defaultMinPasswordLen   = 8
)

var contactPattern = regexp.MustCompile(`^09\d{9}$`)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	lockoutStore     service.LockoutStore
	mailer           service.Mailer
	cfg              *config.Config
	maxLoginAttempts int
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	LockoutStore     service.LockoutStore
	Mailer           service.Mailer
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxLoginAttempts := defaultMaxLoginAttempts
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MaxLoginAttempts > 0 {
		maxLoginAttempts = params.Config.Auth.MaxLoginAttempts
	}

	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		lockoutStore:     params.LockoutStore,
		mailer:           params.Mailer,
		cfg:              params.Config,
		maxLoginAttempts: maxLoginAttempts,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.validateRegistration(input); err != nil {
		srv.log(ctx).Warn("Registration validation failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check for existing account")
		}

		displayID, err := srv.nextDisplayID(ctx, userRepo)
		if err != nil {
			return err
		}

		newUser := &entity.User{
			DisplayID:   displayID,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Contact:     input.Contact,
			Email:       email,
			Address:     input.Address,
			VerifyToken: uuid.NewString(),
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:       newUser.ID,
			Provider:     constants.ProviderTypeEmail,
			PasswordHash: hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.sendMailAsync(ctx, "verification", func(mailCtx context.Context) error {
		return srv.mailer.SendVerificationMail(mailCtx, registeredUser.Email, registeredUser.VerifyToken)
	})

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID), slog.String("displayID", registeredUser.DisplayID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the login process, including the failed-attempt lockout.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	// A pending passcode challenge blocks password login outright, even with
	// the correct password.
	if _, err := srv.lockoutStore.GetPasscode(ctx, email); err == nil {
		srv.log(ctx).Warn("Login refused, passcode challenge pending", slog.String("email", email))

		return nil, domainerrors.ErrPasscodeRequired
	} else if !errors.Is(err, service.ErrNoPasscode) {
		return nil, errors.Wrap(err, "failed to check passcode state")
	}

	loggedInUser, authRecord, err := srv.loadLoginAccount(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		return nil, srv.handleFailedAttempt(ctx, email)
	}

	if !loggedInUser.EmailVerified {
		srv.log(ctx).Warn("Login blocked, email not verified", slog.Any("userID", loggedInUser.ID))
		srv.sendMailAsync(ctx, "verification", func(mailCtx context.Context) error {
			return srv.mailer.SendVerificationMail(mailCtx, loggedInUser.Email, loggedInUser.VerifyToken)
		})

		return nil, domainerrors.ErrEmailNotVerified
	}

	if err := srv.lockoutStore.ClearFailures(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to clear failure counter", slog.String("email", email), slog.Any("error", err))
	}

	return srv.issueSession(ctx, loggedInUser)
}

// VerifyPasscode answers a pending passcode challenge.
func (srv *userService) VerifyPasscode(ctx context.Context, input *usecase.VerifyPasscodeInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Verifying login passcode", slog.String("email", email))

	pending, err := srv.lockoutStore.GetPasscode(ctx, email)
	if errors.Is(err, service.ErrNoPasscode) {
		return nil, domainerrors.ErrPasscodeNotPending
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pending passcode")
	}

	// A wrong guess leaves the challenge pending; the passcode only expires
	// through its TTL or a correct answer.
	if pending != input.Passcode {
		srv.log(ctx).Warn("Passcode mismatch", slog.String("email", email))

		return nil, domainerrors.ErrPasscodeInvalid
	}

	if err := srv.lockoutStore.ClearPasscode(ctx, email); err != nil {
		return nil, errors.Wrap(err, "failed to consume passcode")
	}
	if err := srv.lockoutStore.ClearFailures(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to clear failure counter", slog.String("email", email), slog.Any("error", err))
	}

	loggedInUser, err := srv.loadUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return srv.issueSession(ctx, loggedInUser)
}

// ResendPasscode reissues the pending challenge, subject to the resend cooldown.
func (srv *userService) ResendPasscode(ctx context.Context, input *usecase.ResendPasscodeInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Resend passcode requested", slog.String("email", email))

	if _, err := srv.lockoutStore.GetPasscode(ctx, email); errors.Is(err, service.ErrNoPasscode) {
		return domainerrors.ErrPasscodeNotPending
	} else if err != nil {
		return errors.Wrap(err, "failed to load pending passcode")
	}

	remaining, err := srv.lockoutStore.CooldownRemaining(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to check resend cooldown")
	}
	if remaining > 0 {
		return domainerrors.ErrPasscodeCooldown.WithDetails(
			fmt.Sprintf("retry in %d seconds", int(remaining.Round(time.Second).Seconds())))
	}

	return srv.issuePasscodeChallenge(ctx, email)
}

// VerifyEmail consumes an email verification token and activates the account.
func (srv *userService) VerifyEmail(ctx context.Context, input *usecase.VerifyEmailInput) error {
	srv.log(ctx).Info("Verifying email token")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByVerifyToken(ctx, input.Token)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrVerifyTokenInvalid
			}

			return errors.Wrap(err, "failed to find user by verify token")
		}

		user.EmailVerified = true
		user.VerifyToken = ""
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to mark email verified")
		}

		srv.log(ctx).Info("Email verified", slog.Any("userID", user.ID))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute email verification transaction")
	}

	return nil
}

// RefreshToken handles the process of issuing a new access token using a refresh token.
// The refresh token remains unchanged for security reasons.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var newAccessToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		// 1. Verify the refresh token exists in the database and has not
		// passed its stored expiry.
		tokenHash := srv.tokenService.HashToken(input.RefreshToken)
		if _, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenExpired) {
				return domainerrors.ErrRefreshTokenExpired
			}
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		// 2. Confirm the account still exists.
		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		// 3. Generate only a new access token; the refresh token stays valid
		// and unchanged, which avoids rotation races between tabs.
		newAccessToken, _, err = srv.tokenService.GenerateTokens(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{AccessToken: newAccessToken}, nil
}

// Logout handles the process of invalidating a user's session by deleting their refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	// Single operation - use direct repository instance
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// Already gone; logout is idempotent.
			return nil
		}
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// --- Helpers ---

func (srv *userService) validateRegistration(input *usecase.RegisterInput) error {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("first and last name are required")
	}
	if !contactPattern.MatchString(input.Contact) {
		return domainerrors.ErrValidationFailed.WithDetails("contact must match 09xxxxxxxxx")
	}

	return srv.validatePasswordStrength(input.Password)
}

func (srv *userService) validatePasswordStrength(password string) error {
	rules := srv.cfg.PasswordStrength
	minLen := defaultMinPasswordLen
	requireUpper, requireLower, requireNumber, requireSpecial := true, true, true, true
	if rules != nil {
		if rules.MinLength > 0 {
			minLen = rules.MinLength
		}
		requireUpper = rules.RequireUppercase
		requireLower = rules.RequireLowercase
		requireNumber = rules.RequireNumbers
		requireSpecial = rules.RequireSpecial
	}

	if len(password) < minLen {
		return domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("password must be at least %d characters long", minLen))
	}
	if rules != nil && rules.MaxLength > 0 && len(password) > rules.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case requireUpper && !hasUpper:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one uppercase letter")
	case requireLower && !hasLower:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one lowercase letter")
	case requireNumber && !hasNumber:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one number")
	case requireSpecial && !hasSpecial:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one special character")
	}

	return nil
}

// nextDisplayID derives a sequential human-facing ID from the total user count.
func (srv *userService) nextDisplayID(ctx context.Context, userRepo repository.UserRepository) (string, error) {
	count, err := userRepo.Count(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to count users for display id")
	}

	return fmt.Sprintf("USER%03d", count+1), nil
}

func (srv *userService) loadLoginAccount(ctx context.Context, email string) (*entity.User, *entity.Authentication, error) {
	var loggedInUser *entity.User
	var authRecord *entity.Authentication

	// Load from primary in a short transaction to avoid stale reads on replicas.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		user, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		auth, err := authRepo.FindAuthenticationByUserID(ctx, user.ID, constants.ProviderTypeEmail)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(err, "failed to find authentication")
		}

		loggedInUser = user
		authRecord = auth

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return loggedInUser, authRecord, nil
}

func (srv *userService) loadUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// handleFailedAttempt records a wrong password and escalates to a passcode
// challenge once the configured threshold is reached.
func (srv *userService) handleFailedAttempt(ctx context.Context, email string) error {
	count, err := srv.lockoutStore.RecordFailure(ctx, email)
	if err != nil {
		srv.log(ctx).Error("Failed to record login failure", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Int("failedAttempts", count))

	if count < srv.maxLoginAttempts {
		return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if err := srv.issuePasscodeChallenge(ctx, email); err != nil {
		return err
	}

	return domainerrors.ErrPasscodeRequired
}

// issuePasscodeChallenge generates and mails a fresh 6-digit passcode and
// resets the failure counter so the challenge starts from a clean slate.
func (srv *userService) issuePasscodeChallenge(ctx context.Context, email string) error {
	code, err := generatePasscode()
	if err != nil {
		return errors.Wrap(err, "failed to generate passcode")
	}

	if err := srv.lockoutStore.StorePasscode(ctx, email, code); err != nil {
		return errors.Wrap(err, "failed to store passcode")
	}
	if err := srv.lockoutStore.ClearFailures(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to clear failure counter", slog.String("email", email), slog.Any("error", err))
	}
	if err := srv.lockoutStore.StartCooldown(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to start resend cooldown", slog.String("email", email), slog.Any("error", err))
	}

	srv.sendMailAsync(ctx, "passcode", func(mailCtx context.Context) error {
		return srv.mailer.SendPasscodeMail(mailCtx, email, code)
	})

	srv.log(ctx).Info("Passcode challenge issued", slog.String("email", email))

	return nil
}

// issueSession generates a token pair and persists the hashed refresh token.
func (srv *userService) issueSession(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newRefreshToken := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

// sendMailAsync fires transactional mail without blocking or failing the
// triggering operation.
func (srv *userService) sendMailAsync(ctx context.Context, kind string, send func(context.Context) error) {
	logger := srv.log(ctx)
	mailCtx := context.WithoutCancel(ctx)

	go func() {
		if err := send(mailCtx); err != nil {
			logger.Error("Failed to send mail", slog.String("kind", kind), slog.Any("error", err))
		}
	}()
}

// generatePasscode returns a random zero-padded 6-digit code.
func generatePasscode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
