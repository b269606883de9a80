package driver

import "errors"

var (
	ErrDriverNotFound  = errors.New("driver not found")
	ErrDriverExists    = errors.New("user is already a driver")
	ErrInvalidDriver   = errors.New("invalid driver")
	ErrInvalidLocation = errors.New("invalid location")
)

const PgUniqueViolation = "23505"
