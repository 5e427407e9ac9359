// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"time"

	"github.com/MKhiriev/campus-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing digests and
// checks candidates against them.
//
// Hashing is salted: two calls with the same plaintext return different
// digests, and each digest carries the parameters needed to verify it.
type PasswordHasher interface {
	// Hash returns the encoded digest of plaintext. It fails only when the
	// system random source fails.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A malformed digest
	// never matches.
	Verify(plaintext, digest string) bool
}

// ResetTokenManager issues one-time password reset tokens.
// Only the digest of a token is meant to be stored.
type ResetTokenManager interface {
	// Issue returns a fresh plaintext token, its digest and expiry.
	Issue() (models.ResetToken, error)

	// Digest returns the stored form of a plaintext token.
	Digest(token string) string

	// Verify reports whether token matches storedDigest and has not expired
	// at now. Absent state never verifies.
	Verify(token string, storedDigest *string, storedExpiresAt *time.Time, now time.Time) bool
}

// SessionTokenIssuer signs and verifies stateless session tokens.
type SessionTokenIssuer interface {
	// Issue returns a signed token whose subject is subjectID.
	Issue(subjectID string) (models.Token, error)

	// Verify checks signature, issuer and expiry of signed and returns the
	// parsed token. Any failure is reported as ErrInvalidSessionToken.
	Verify(signed string) (models.Token, error)
}
