package crypto

import "errors"

var (
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrEmptyKeySet         = errors.New("key set has no active signing key")
	ErrEmptySubject        = errors.New("empty token subject")
	ErrWeakSigningKey      = errors.New("signing key is too short")
)
