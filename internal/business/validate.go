package business

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"cardapio-be/internal/utils"

	"github.com/shopspring/decimal"
)

var (
	timeOfDay = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	weekdays  = map[string]bool{
		"segunda": true, "terca": true, "quarta": true, "quinta": true,
		"sexta": true, "sabado": true, "domingo": true,
	}
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidBusiness}, args...)...)
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		return "", invalid("name must have 2 to 100 characters")
	}
	return name, nil
}

func validatePhone(phone string) error {
	if n := len(utils.Digits(phone)); n < 10 || n > 11 {
		return invalid("phone must have 10 or 11 digits")
	}
	return nil
}

func validateAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", invalid("address is required")
	}
	return address, nil
}

func validateMoney(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return invalid("%s must not be negative", field)
	}
	return nil
}

func validateCEP(cep *string) error {
	if cep != nil && *cep != "" && len(utils.Digits(*cep)) != 8 {
		return invalid("cep must have 8 digits")
	}
	return nil
}

func validateState(state *string) error {
	if state != nil && *state != "" && utf8.RuneCountInString(strings.TrimSpace(*state)) != 2 {
		return invalid("state must be the 2 letter code")
	}
	return nil
}

func (o OpeningHours) validate() error {
	for day, h := range o {
		if !weekdays[day] {
			return invalid("unknown weekday %q", day)
		}
		if h.Closed {
			continue
		}
		if !timeOfDay.MatchString(h.Open) || !timeOfDay.MatchString(h.Close) {
			return invalid("opening hours of %s must be HH:MM", day)
		}
	}
	return nil
}

func (p *CreateBusinessParams) normalize() error {
	var err error
	if p.Name, err = validateName(p.Name); err != nil {
		return err
	}
	if err = validatePhone(p.Phone); err != nil {
		return err
	}
	if p.Address, err = validateAddress(p.Address); err != nil {
		return err
	}
	if err = validateMoney("delivery_fee", p.DeliveryFee); err != nil {
		return err
	}
	if err = validateMoney("minimum_order", p.MinimumOrder); err != nil {
		return err
	}
	if err = validateCEP(p.CEP); err != nil {
		return err
	}
	if err = validateState(p.State); err != nil {
		return err
	}
	return p.OpeningHours.validate()
}

func (p *UpdateBusinessParams) normalize() error {
	if p.Name != nil {
		name, err := validateName(*p.Name)
		if err != nil {
			return err
		}
		p.Name = &name
	}
	if p.Phone != nil {
		if err := validatePhone(*p.Phone); err != nil {
			return err
		}
	}
	if p.Address != nil {
		addr, err := validateAddress(*p.Address)
		if err != nil {
			return err
		}
		p.Address = &addr
	}
	if p.DeliveryFee != nil {
		if err := validateMoney("delivery_fee", *p.DeliveryFee); err != nil {
			return err
		}
	}
	if p.MinimumOrder != nil {
		if err := validateMoney("minimum_order", *p.MinimumOrder); err != nil {
			return err
		}
	}
	if err := validateCEP(p.CEP); err != nil {
		return err
	}
	if err := validateState(p.State); err != nil {
		return err
	}
	if err := p.OpeningHours.validate(); err != nil {
		return err
	}
	if !p.hasChanges() {
		return ErrNothingToUpdate
	}
	return nil
}

func (p *UpdateBusinessParams) hasChanges() bool {
	return p.Name != nil || p.Description != nil || p.Phone != nil || p.Address != nil ||
		p.City != nil || p.State != nil || p.CEP != nil || p.Instagram != nil ||
		p.LogoURL != nil || p.CoverURL != nil || p.DeliveryFee != nil ||
		p.MinimumOrder != nil || p.OpeningHours != nil
}
