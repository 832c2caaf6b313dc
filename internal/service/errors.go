package service

import "errors"

// Domain errors the handlers translate to HTTP statuses.
var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyJoined = errors.New("already joined this event")
	ErrAlreadyExists = errors.New("already exists")
	ErrSuspended     = errors.New("account is suspended")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrBadCredential = errors.New("invalid email or password")
)
