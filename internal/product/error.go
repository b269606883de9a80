package product

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found for this business")
	ErrPlanLimitReached   = errors.New("product limit of current plan reached")
	ErrInvalidProduct     = errors.New("invalid product")
	ErrNothingToUpdate    = errors.New("no fields to update")
	ErrProductUnavailable = errors.New("product unavailable")
)
