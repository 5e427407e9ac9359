// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"unicode/utf8"

	"github.com/MKhiriev/campus-auth/models"
)

// Field names accepted by [UserValidator]. They match the JSON names of the
// request bodies so they can be reported to the client unchanged.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldYear            = "year"
	FieldToken           = "token"
	FieldUserID          = "user_id"
	FieldCurrentPassword = "currentPassword"
	FieldNewPassword     = "newPassword"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// UserValidator implements [Validator] for the authentication request
// models. Unlike a fail-fast validator it reports every failing field.
type UserValidator struct{}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// every request model are accepted.
//
// Supported types:
//   - models.RegisterRequest
//   - models.LoginRequest
//   - models.ForgotPasswordRequest
//   - models.ResetPasswordRequest
//   - models.UpdatePasswordRequest
//
// The result is nil or a [ValidationErrors].
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)
	case models.ForgotPasswordRequest:
		return v.validateForgotPassword(value, fields...)
	case *models.ForgotPasswordRequest:
		return v.validateForgotPassword(*value, fields...)
	case models.ResetPasswordRequest:
		return v.validateResetPassword(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPassword(*value, fields...)
	case models.UpdatePasswordRequest:
		return v.validateUpdatePassword(value, fields...)
	case *models.UpdatePasswordRequest:
		return v.validateUpdatePassword(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldYear}
	}

	var errs ValidationErrors
	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = checkEmail(request.Email)
		case FieldPassword:
			err = checkNewPassword(request.Password)
		case FieldYear:
			if request.Year < 0 {
				err = ErrInvalidYear
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			errs = append(errs, FieldError{Field: f, Err: err})
		}
	}

	return errs.orNil()
}

// validateLogin only checks presence: the strength rules of today must not
// lock out accounts created under older ones.
func (v *UserValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if request.Email == "" {
				errs = append(errs, FieldError{Field: f, Err: ErrEmptyEmail})
			}
		case FieldPassword:
			if request.Password == "" {
				errs = append(errs, FieldError{Field: f, Err: ErrEmptyPassword})
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *UserValidator) validateForgotPassword(request models.ForgotPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := checkEmail(request.Email); err != nil {
				errs = append(errs, FieldError{Field: f, Err: err})
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *UserValidator) validateResetPassword(request models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldPassword}
	}

	var errs ValidationErrors
	for _, f := range fields {
		var err error
		switch f {
		case FieldToken:
			if request.Token == "" {
				err = ErrEmptyToken
			}
		case FieldPassword:
			err = checkNewPassword(request.Password)
		default:
			return ErrUnknownField
		}
		if err != nil {
			errs = append(errs, FieldError{Field: f, Err: err})
		}
	}

	return errs.orNil()
}

func (v *UserValidator) validateUpdatePassword(request models.UpdatePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCurrentPassword, FieldNewPassword}
	}

	var errs ValidationErrors
	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			if request.UserID == "" {
				err = ErrInvalidUserID
			}
		case FieldCurrentPassword:
			if request.CurrentPassword == "" {
				err = ErrEmptyPassword
			}
		case FieldNewPassword:
			err = checkNewPassword(request.NewPassword)
		default:
			return ErrUnknownField
		}
		if err != nil {
			errs = append(errs, FieldError{Field: f, Err: err})
		}
	}

	return errs.orNil()
}

// checkEmail accepts a bare RFC 5322 address. Display names ("Bob <b@x>")
// are rejected.
func checkEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}

	return nil
}

func checkNewPassword(password string) error {
	switch n := utf8.RuneCountInString(password); {
	case n == 0:
		return ErrEmptyPassword
	case n < MinPasswordLength:
		return ErrPasswordTooShort
	case n > MaxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}
