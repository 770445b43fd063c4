package client

import "errors"

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrAlreadyExists = errors.New("identifier already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrRateLimited   = errors.New("too many attempts, try later")
)
