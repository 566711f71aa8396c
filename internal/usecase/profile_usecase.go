// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"greeniecart/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the editable profile fields. Email and display
// ID are immutable; nil fields are left unchanged.
type UpdateProfileInput struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Contact   *string `json:"contact,omitempty"`
	Address   *string `json:"address,omitempty"`
}
