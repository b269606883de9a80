package product

import (
	"fmt"
	"net/url"
	"strings"

	"cardapio-be/internal/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 500
	maxAddonGroups    = 20
)

func validateName(name string) error {
	n := utils.RuneLen(name)
	if n == 0 || n > maxNameLen {
		return fmt.Errorf("%w: name must have 1 to %d characters", ErrInvalidProduct, maxNameLen)
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return fmt.Errorf("%w: price must be greater than zero", ErrInvalidProduct)
	}
	if !price.Equal(price.Round(2)) {
		return fmt.Errorf("%w: price must have at most two decimal places", ErrInvalidProduct)
	}
	return nil
}

func validateDescription(d *string) error {
	if d != nil && utils.RuneLen(*d) > maxDescriptionLen {
		return fmt.Errorf("%w: description must have at most %d characters", ErrInvalidProduct, maxDescriptionLen)
	}
	return nil
}

// validateImageURL accepts hosted http(s) references only; inline data is refused.
func validateImageURL(raw *string) error {
	if raw == nil || *raw == "" {
		return nil
	}
	u, err := url.Parse(*raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: image must be an http(s) URL", ErrInvalidProduct)
	}
	return nil
}

// normalizeAddons validates every group and fills missing ids.
func normalizeAddons(groups AddonGroups) (AddonGroups, error) {
	if len(groups) > maxAddonGroups {
		return nil, fmt.Errorf("%w: at most %d addon groups", ErrInvalidProduct, maxAddonGroups)
	}

	out := make(AddonGroups, len(groups))
	for i, g := range groups {
		g.Name = strings.TrimSpace(g.Name)
		if g.ID == "" {
			g.ID = uuid.NewString()
		}
		opts := append(g.Options[:0:0], g.Options...)
		for j := range opts {
			opts[j].Name = strings.TrimSpace(opts[j].Name)
			if opts[j].ID == "" {
				opts[j].ID = uuid.NewString()
			}
		}
		g.Options = opts

		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
		}
		out[i] = g
	}
	return out, nil
}

func (p *CreateProductParams) normalize() error {
	if p.CategoryID != nil && *p.CategoryID == "" {
		p.CategoryID = nil
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := validateName(p.Name); err != nil {
		return err
	}
	if err := validatePrice(p.Price); err != nil {
		return err
	}
	if err := validateDescription(p.Description); err != nil {
		return err
	}
	if err := validateImageURL(p.ImageURL); err != nil {
		return err
	}

	addons, err := normalizeAddons(p.Addons)
	if err != nil {
		return err
	}
	p.Addons = addons
	return nil
}

func (p *UpdateProductParams) normalize() error {
	if p.CategoryID != nil && *p.CategoryID == "" {
		p.CategoryID = nil
		p.ClearCategory = true
	}
	if !p.hasChanges() {
		return ErrNothingToUpdate
	}
	if p.Name != nil {
		trimmed := strings.TrimSpace(*p.Name)
		p.Name = &trimmed
		if err := validateName(trimmed); err != nil {
			return err
		}
	}
	if p.Price != nil {
		if err := validatePrice(*p.Price); err != nil {
			return err
		}
	}
	if err := validateDescription(p.Description); err != nil {
		return err
	}
	if err := validateImageURL(p.ImageURL); err != nil {
		return err
	}
	if p.Addons != nil {
		addons, err := normalizeAddons(*p.Addons)
		if err != nil {
			return err
		}
		p.Addons = &addons
	}
	return nil
}

func (p *UpdateProductParams) hasChanges() bool {
	return p.Name != nil ||
		p.Description != nil ||
		p.Price != nil ||
		p.ImageURL != nil ||
		p.IsAvailable != nil ||
		p.Addons != nil ||
		p.CategoryID != nil ||
		p.ClearCategory
}
