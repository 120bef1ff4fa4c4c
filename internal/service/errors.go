package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown login and a wrong
	// password so that a failed login never reveals which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotOwner is returned when a user attempts to modify or delete an
	// item reported by someone else.
	ErrNotOwner = errors.New("item belongs to another user")

	ErrResetTokenInvalid = errors.New("reset token is invalid")
	ErrResetTokenExpired = errors.New("reset token is expired")
	ErrResetTokenUsed    = errors.New("reset token was already used")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
