package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/campus-auth/internal/validators"
	"github.com/MKhiriev/campus-auth/models"
)

// AuthValidationService rejects malformed requests before they reach the
// wrapped AuthService. Its errors wrap both ErrInvalidDataProvided and the
// validators.ValidationErrors describing every failing field.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.AuthResult{}, err
	}

	return v.inner.Register(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResult, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.LoginResult{}, err
	}

	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) ForgotPassword(ctx context.Context, request models.ForgotPasswordRequest) (models.ResetToken, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.ResetToken{}, err
	}

	return v.inner.ForgotPassword(ctx, request)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, request models.ResetPasswordRequest) (models.AuthResult, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.AuthResult{}, err
	}

	return v.inner.ResetPassword(ctx, request)
}

func (v *AuthValidationService) UpdatePassword(ctx context.Context, request models.UpdatePasswordRequest) (models.AuthResult, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.AuthResult{}, err
	}

	return v.inner.UpdatePassword(ctx, request)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) CurrentUser(ctx context.Context, userID string) (models.PublicUser, error) {
	return v.inner.CurrentUser(ctx, userID)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) validate(ctx context.Context, request any) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
