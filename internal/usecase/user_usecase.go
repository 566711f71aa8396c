// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"greeniecart/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new shopper account.
type RegisterInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Contact   string `json:"contact" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Address   string `json:"address" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyPasscodeInput defines the data required to answer a passcode challenge.
type VerifyPasscodeInput struct {
	Email    string `json:"email" validate:"required,email"`
	Passcode string `json:"passcode" validate:"required,len=6,numeric"`
}

// ResendPasscodeInput defines the data required to request a fresh passcode.
type ResendPasscodeInput struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyEmailInput carries the token from an email verification link.
type VerifyEmailInput struct {
	Token string `json:"token" validate:"required"`
}

// RefreshTokenInput carries the refresh token used to mint a new access token.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutInput carries the refresh token of the session being ended.
type LogoutInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the newly minted access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// UserUsecase defines the interface for account and session business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login authenticates email/password credentials. After too many failed
	// attempts it refuses with a passcode challenge that VerifyPasscode must
	// answer before tokens are issued again.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// VerifyPasscode answers a pending passcode challenge and, on success,
	// issues tokens for the account.
	VerifyPasscode(ctx context.Context, input *VerifyPasscodeInput) (*LoginOutput, error)

	// ResendPasscode reissues the pending challenge, subject to a cooldown.
	ResendPasscode(ctx context.Context, input *ResendPasscodeInput) error

	// VerifyEmail consumes an email verification token and activates the account.
	VerifyEmail(ctx context.Context, input *VerifyEmailInput) error

	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
