package user

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoRole          = errors.New("user has no role")
	ErrInvalidRole     = errors.New("invalid role")
)
