// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/campus-auth/internal/config"
	"github.com/MKhiriev/campus-auth/internal/utils"
	"github.com/MKhiriev/campus-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// KeySet holds the HMAC keys known to a [SessionTokenIssuer].
// New tokens are signed with Keys[ActiveKeyID]; tokens signed with any key
// in Keys verify until they expire.
type KeySet struct {
	ActiveKeyID string
	Keys        map[string][]byte
}

// KeySetFromConfig builds the key set described by cfg: the signing key
// under TokenKeyID plus every verification-only key.
func KeySetFromConfig(cfg config.App) KeySet {
	keys := make(map[string][]byte, len(cfg.TokenVerifyKeys)+1)
	for kid, key := range cfg.TokenVerifyKeys {
		keys[kid] = []byte(key)
	}
	keys[cfg.TokenKeyID] = []byte(cfg.TokenSignKey)

	return KeySet{ActiveKeyID: cfg.TokenKeyID, Keys: keys}
}

func (k KeySet) active() ([]byte, error) {
	key, ok := k.Keys[k.ActiveKeyID]
	if !ok || len(key) == 0 {
		return nil, ErrEmptyKeySet
	}
	return key, nil
}

type sessionTokenIssuer struct {
	keys     KeySet
	issuer   string
	duration time.Duration
	ids      *utils.UUIDGenerator
	now      func() time.Time
}

// MinSigningKeyLength is the shortest HS256 key accepted for signing.
const MinSigningKeyLength = 32

// NewSessionTokenIssuer returns an HS256 [SessionTokenIssuer]. It fails when
// the active key is missing or shorter than [MinSigningKeyLength], when
// issuer is empty, or when duration is not positive.
func NewSessionTokenIssuer(keys KeySet, issuer string, duration time.Duration) (SessionTokenIssuer, error) {
	key, err := keys.active()
	if err != nil {
		return nil, err
	}
	if len(key) < MinSigningKeyLength {
		return nil, ErrWeakSigningKey
	}
	if issuer == "" || duration <= 0 {
		return nil, errors.New("invalid params for session token issuer")
	}

	return &sessionTokenIssuer{
		keys:     keys,
		issuer:   issuer,
		duration: duration,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
	}, nil
}

// Issue implements [SessionTokenIssuer]. The token carries the standard
// iss, sub, iat and exp claims, a unique jti, and the active key id in the
// kid header.
func (s *sessionTokenIssuer) Issue(subjectID string) (models.Token, error) {
	if subjectID == "" {
		return models.Token{}, ErrEmptySubject
	}

	key, err := s.keys.active()
	if err != nil {
		return models.Token{}, err
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		ID:        s.ids.Generate(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = s.keys.ActiveKeyID

	signed, err := token.SignedString(key)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     signed,
		UserID:           subjectID,
	}, nil
}

// Verify implements [SessionTokenIssuer].
func (s *sessionTokenIssuer) Verify(signed string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	token, err := parser.ParseWithClaims(signed, claims, s.lookupKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}
	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, ErrEmptySubject)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     signed,
		UserID:           claims.Subject,
	}, nil
}

// lookupKey resolves the verification key from the kid header. Tokens
// without a kid are checked against the active key.
func (s *sessionTokenIssuer) lookupKey(token *jwt.Token) (any, error) {
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		kid = s.keys.ActiveKeyID
	}

	key, ok := s.keys.Keys[kid]
	if !ok || len(key) == 0 {
		return nil, fmt.Errorf("unknown key id %q", kid)
	}
	return key, nil
}
