// Package common holds the sentinel errors and small helpers shared by the
// server, the admin tool and the client. Match errors with errors.Is.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Provisioning input errors.
	ErrorValidation = errors.New("validation error")

	// ErrorUnauthorized is the single failure value returned by authentication,
	// whatever the underlying reason was.
	ErrorUnauthorized = errors.New("unauthorized")

	ErrorInternal    = errors.New("internal error")
	ErrorRateLimited = errors.New("rate limited")

	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
