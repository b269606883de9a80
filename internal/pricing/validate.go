package pricing

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidGroup = errors.New("invalid addon group")

// Validate enforces the shape of a group as stored on a product.
func (g AddonGroup) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidGroup)
	}
	if !g.Type.Valid() {
		return fmt.Errorf("%w: type must be single or multiple", ErrInvalidGroup)
	}
	if len(g.Options) == 0 {
		return fmt.Errorf("%w: %q needs at least one option", ErrInvalidGroup, g.Name)
	}
	if g.Min != nil && *g.Min < 0 {
		return fmt.Errorf("%w: %q min must not be negative", ErrInvalidGroup, g.Name)
	}
	if g.Max != nil && *g.Max < 1 {
		return fmt.Errorf("%w: %q max must be at least 1", ErrInvalidGroup, g.Name)
	}
	if g.Min != nil && g.Max != nil && *g.Min > *g.Max {
		return fmt.Errorf("%w: %q min exceeds max", ErrInvalidGroup, g.Name)
	}

	seen := make(map[string]struct{}, len(g.Options))
	for _, o := range g.Options {
		if strings.TrimSpace(o.Name) == "" {
			return fmt.Errorf("%w: %q has an option without name", ErrInvalidGroup, g.Name)
		}
		if o.Price.IsNegative() {
			return fmt.Errorf("%w: option %q has a negative price", ErrInvalidGroup, o.Name)
		}
		if _, dup := seen[o.ID]; dup {
			return fmt.Errorf("%w: option id %q repeated in %q", ErrInvalidGroup, o.ID, g.Name)
		}
		seen[o.ID] = struct{}{}
	}
	return nil
}
