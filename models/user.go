// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the access level of an account.
type Role string

const (
	// RoleStudent is the only role a user can obtain through self-registration.
	RoleStudent Role = "student"
	// RoleFaculty accounts are created by an administrator.
	RoleFaculty Role = "faculty"
	// RoleAdmin accounts are created by an administrator.
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// User is the persisted account record owned by the credential store.
// It is the storage shape and must never be written to a response directly;
// use [User.Public] to build the outward projection.
type User struct {
	// UserID is the store-assigned identifier (UUIDv7 string).
	UserID string `json:"-"`

	UserName    string `json:"-"`
	Email       string `json:"-"`
	PhoneNumber string `json:"-"`
	Role        Role   `json:"-"`

	// Student-specific attributes. Empty for faculty and admin accounts.
	BranchID    string `json:"-"`
	Year        int    `json:"-"`
	StudentCode string `json:"-"`

	// PasswordHash is the encoded Argon2id digest. It is only populated when
	// the record was loaded with an explicit password projection.
	PasswordHash string `json:"-"`

	// PasswordResetTokenDigest and PasswordResetExpiresAt are either both set
	// or both nil.
	PasswordResetTokenDigest *string    `json:"-"`
	PasswordResetExpiresAt   *time.Time `json:"-"`

	PasswordChangedAt *time.Time `json:"-"`
	CreatedAt         time.Time  `json:"-"`
	UpdatedAt         time.Time  `json:"-"`
}

// HasPendingReset reports whether a reset digest is stored for the user.
func (u User) HasPendingReset() bool {
	return u.PasswordResetTokenDigest != nil && u.PasswordResetExpiresAt != nil
}

// Public builds the immutable outward view of the record.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:          u.UserID,
		UserName:    u.UserName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		BranchID:    u.BranchID,
		Year:        u.Year,
		StudentCode: u.StudentCode,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// PublicUser is the only user representation that leaves the service.
// It has no credential or reset fields by construction.
type PublicUser struct {
	ID          string    `json:"_id"`
	UserName    string    `json:"user_name,omitempty"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Role        Role      `json:"role"`
	BranchID    string    `json:"branch_id,omitempty"`
	Year        int       `json:"year,omitempty"`
	StudentCode string    `json:"student_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewUser carries the fields needed to create a record. Password is the
// plaintext; the store hashes it before persistence.
type NewUser struct {
	UserName    string
	Email       string
	Password    string
	PhoneNumber string
	Role        Role
	BranchID    string
	Year        int
	StudentCode string
}
