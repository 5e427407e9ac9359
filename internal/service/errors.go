package service

import "errors"

var (
	ErrInvalidDataProvided  = errors.New("invalid data provided")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrRoleEscalationDenied = errors.New("only students can self-register")
	ErrUserNotFound         = errors.New("user not found")
	ErrRegistrationFailed   = errors.New("registration failed")

	ErrTokenInvalidOrExpired   = errors.New("reset token is invalid or has expired")
	ErrTokenIsExpiredOrInvalid = errors.New("session token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrStoreUnavailable = errors.New("credential store unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Error codes attached to unexpected failures. They end up in logs and in
// development-mode error responses.
const (
	CodeStoreUnavailable   = "STORE_UNAVAILABLE"
	CodeTokenCreation      = "TOKEN_CREATION_FAILED"
	CodeResetTokenCreation = "RESET_TOKEN_CREATION_FAILED"
)
