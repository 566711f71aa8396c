package validator

import (
	"testing"

	domainerrors "greeniecart/internal/domain/errors"
	"greeniecart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsTaggedInput(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.RegisterInput{
		FirstName: "Greenie",
		LastName:  "Buyer",
		Contact:   "09123456789",
		Email:     "buyer@example.com",
		Address:   "123 Garden Lane",
		Password:  "Str0ng!Pass",
	})

	require.NoError(t, err)
}

func TestValidate_RejectsMissingRequiredFields(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.RegisterInput{
		FirstName: "Greenie",
		Password:  "Str0ng!Pass",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "Email")
}

func TestValidate_RejectsMalformedEmail(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.LoginInput{Email: "not-an-email", Password: "Str0ng!Pass"})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestValidate_RejectsNonNumericPasscode(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.VerifyPasscodeInput{Email: "buyer@example.com", Passcode: "12ab56"})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestValidate_RejectsZeroCartQuantity(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.AddCartItemInput{ProductID: uuid.New(), Quantity: 0})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestValidate_RejectsNonPositiveProductPrice(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreateProductInput{Name: "Monstera", Price: 0, Stock: 3})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
