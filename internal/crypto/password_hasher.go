// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/campus-auth/internal/config"
	"golang.org/x/crypto/argon2"
)

const (
	argon2SaltLen = 16
	argon2KeyLen  = 32

	// argon2MaxMemory caps the memory cost accepted from a stored digest
	// (4 GiB in KiB).
	argon2MaxMemory = 4 * 1024 * 1024
)

// DummyPasswordDigest is a well-formed digest that matches no password.
// Login verifies against it when the email is unknown so both failure paths
// cost one Argon2id computation.
const DummyPasswordDigest = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// argon2Hasher is the Argon2id implementation of [PasswordHasher].
type argon2Hasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	rand        io.Reader
}

// NewPasswordHasher builds a [PasswordHasher] with the cost parameters of
// cfg. Digests produced by other parameters stay verifiable because each
// digest is self-describing.
func NewPasswordHasher(cfg config.Argon2) PasswordHasher {
	return &argon2Hasher{
		memory:      cfg.Memory,
		iterations:  cfg.Iterations,
		parallelism: cfg.Parallelism,
		rand:        rand.Reader,
	}
}

// Hash implements [PasswordHasher]. The digest is encoded as
//
//	$argon2id$v=19$m=<memory>,t=<iterations>,p=<parallelism>$<salt>$<key>
//
// with salt and key in unpadded standard base64.
func (h *argon2Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, h.iterations, h.memory, h.parallelism, argon2KeyLen)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory,
		h.iterations,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher].
func (h *argon2Hasher) Verify(plaintext, digest string) bool {
	params, salt, expected, ok := decodeDigest(digest)
	if !ok {
		return false
	}

	computed := argon2.IDKey([]byte(plaintext), salt, params.iterations, params.memory, params.parallelism, uint32(len(expected)))

	return subtle.ConstantTimeCompare(computed, expected) == 1
}

type digestParams struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

// decodeDigest parses an encoded digest. It rejects anything argon2.IDKey
// would panic on or that would allocate unreasonable memory.
func decodeDigest(digest string) (digestParams, []byte, []byte, bool) {
	var params digestParams

	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return params, nil, nil, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params, nil, nil, false
	}

	var memory, iterations, parallelism uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return params, nil, nil, false
	}
	if iterations == 0 || parallelism == 0 || parallelism > 255 || memory == 0 || memory > argon2MaxMemory {
		return params, nil, nil, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return params, nil, nil, false
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > 1024 {
		return params, nil, nil, false
	}

	params = digestParams{memory: memory, iterations: iterations, parallelism: uint8(parallelism)}
	return params, salt, key, true
}
