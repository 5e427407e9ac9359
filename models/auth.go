// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the self-registration payload.
// Role is accepted only so that a non-student value can be rejected explicitly.
type RegisterRequest struct {
	UserName    string `json:"user_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	BranchID    string `json:"branch_id"`
	Year        int    `json:"year"`
	StudentCode string `json:"student_code"`
	Role        Role   `json:"role,omitempty"`
}

// LoginRequest carries the credentials of a login attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest starts the reset flow for an email address.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes the reset flow. Token comes from the URL,
// Password from the body.
type ResetPasswordRequest struct {
	Token    string `json:"-"`
	Password string `json:"password"`
}

// UpdatePasswordRequest changes the password of an authenticated user.
// UserID is filled from the verified session, never from the body.
type UpdatePasswordRequest struct {
	UserID          string `json:"-"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AuthResult is returned by the entry points that log the user in and echo
// the account back: register, reset-password and update-password.
type AuthResult struct {
	User  PublicUser
	Token Token
}

// LoginResult is intentionally narrower than AuthResult: login only reports
// the token and the role of the account.
type LoginResult struct {
	Token Token
	Role  Role
}
