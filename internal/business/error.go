package business

import "errors"

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrBusinessExists   = errors.New("owner already has a business")
	ErrInvalidBusiness  = errors.New("invalid business")
	ErrNothingToUpdate  = errors.New("nothing to update")
)

// PgUniqueViolation is the postgres code for unique constraint errors.
const PgUniqueViolation = "23505"
