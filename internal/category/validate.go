package category

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const MaxNameLen = 50

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLen {
		return "", fmt.Errorf("%w: name must have 1 to %d characters", ErrInvalidCategory, MaxNameLen)
	}
	return name, nil
}

func validateEmoji(emoji string) (string, error) {
	emoji = strings.TrimSpace(emoji)
	if emoji == "" {
		return "", fmt.Errorf("%w: emoji is required", ErrInvalidCategory)
	}
	return emoji, nil
}

func (p *CreateCategoryParams) normalize() error {
	var err error
	if p.Name, err = validateName(p.Name); err != nil {
		return err
	}
	p.Emoji, err = validateEmoji(p.Emoji)
	return err
}

func (p *UpdateCategoryParams) normalize() error {
	if p.Name != nil {
		name, err := validateName(*p.Name)
		if err != nil {
			return err
		}
		p.Name = &name
	}
	if p.Emoji != nil {
		emoji, err := validateEmoji(*p.Emoji)
		if err != nil {
			return err
		}
		p.Emoji = &emoji
	}
	if p.Name == nil && p.Emoji == nil && p.IsActive == nil {
		return ErrNothingToUpdate
	}
	return nil
}
