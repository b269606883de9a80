package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidMove      = errors.New("invalid category move")
	ErrNothingToUpdate  = errors.New("nothing to update")
)
