// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/campus-auth/models"
)

const (
	// ResetTokenTTL is how long an issued reset token stays redeemable.
	ResetTokenTTL = 10 * time.Minute

	resetTokenBytes = 32
)

type resetTokenManager struct {
	now  func() time.Time
	rand io.Reader
}

// NewResetTokenManager builds a [ResetTokenManager]. now defaults to
// time.Now when nil.
func NewResetTokenManager(now func() time.Time) ResetTokenManager {
	if now == nil {
		now = time.Now
	}
	return &resetTokenManager{now: now, rand: rand.Reader}
}

// Issue implements [ResetTokenManager]. The plaintext is 32 random bytes
// hex-encoded (64 characters).
func (m *resetTokenManager) Issue() (models.ResetToken, error) {
	raw := make([]byte, resetTokenBytes)
	if _, err := io.ReadFull(m.rand, raw); err != nil {
		return models.ResetToken{}, fmt.Errorf("error generating reset token: %w", err)
	}

	plaintext := hex.EncodeToString(raw)

	return models.ResetToken{
		Plaintext: plaintext,
		Digest:    m.Digest(plaintext),
		ExpiresAt: m.now().Add(ResetTokenTTL),
	}, nil
}

// Digest implements [ResetTokenManager]: hex-encoded SHA-256 of token.
func (m *resetTokenManager) Digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Verify implements [ResetTokenManager]. The token is valid strictly before
// storedExpiresAt.
func (m *resetTokenManager) Verify(token string, storedDigest *string, storedExpiresAt *time.Time, now time.Time) bool {
	if token == "" || storedDigest == nil || storedExpiresAt == nil {
		return false
	}
	if !now.Before(*storedExpiresAt) {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(m.Digest(token)), []byte(*storedDigest)) == 1
}
