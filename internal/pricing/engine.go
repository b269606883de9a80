package pricing

import (
	"slices"

	"github.com/shopspring/decimal"
)

// AddonsTotal sums, per unit, the price of every selected option. Ids that do
// not belong to the group are ignored.
func AddonsTotal(groups []AddonGroup, sel Selections) decimal.Decimal {
	total := decimal.Zero
	for _, g := range groups {
		for _, id := range sel[g.ID] {
			if o, ok := g.option(id); ok {
				total = total.Add(o.Price)
			}
		}
	}
	return total
}

func UnitPrice(item Item, sel Selections) decimal.Decimal {
	return item.BasePrice.Add(AddonsTotal(item.Groups, sel))
}

// ComputeLineTotal returns (base + selected addons) x quantity.
func ComputeLineTotal(item Item, sel Selections, quantity int) decimal.Decimal {
	return UnitPrice(item, sel).Mul(decimal.NewFromInt(int64(quantity)))
}

// ValidateSelections checks every required group has a selection and meets
// its declared minimum. Optional groups impose nothing.
func ValidateSelections(item Item, sel Selections) error {
	for _, g := range item.Groups {
		if !g.Required {
			continue
		}

		need := 1
		if g.Min != nil && *g.Min > need {
			need = *g.Min
		}

		got := 0
		for _, id := range sel[g.ID] {
			if _, ok := g.option(id); ok {
				got++
			}
		}

		if got < need {
			return &SelectionError{GroupID: g.ID, GroupName: g.Name, Min: need, Selected: got}
		}
	}
	return nil
}

// ToggleOption applies one tap on an option. Single groups replace the
// current choice; multiple groups toggle and refuse new picks past max.
// Deselecting is always allowed.
func ToggleOption(g AddonGroup, current []string, optionID string) ([]string, error) {
	if _, ok := g.option(optionID); !ok {
		return current, ErrUnknownOption
	}

	if g.Type == ModeSingle {
		return []string{optionID}, nil
	}

	if i := slices.Index(current, optionID); i >= 0 {
		next := make([]string, 0, len(current)-1)
		next = append(next, current[:i]...)
		return append(next, current[i+1:]...), nil
	}

	if limit := g.limit(); limit > 0 && len(current) >= limit {
		return current, ErrMaxSelections
	}

	return append(slices.Clone(current), optionID), nil
}

// ClampSelections normalizes a posted selection map: duplicates collapse,
// single groups keep their last option, groups past max are rejected and
// unknown groups or options fail.
func ClampSelections(item Item, sel Selections) (Selections, error) {
	byID := make(map[string]AddonGroup, len(item.Groups))
	for _, g := range item.Groups {
		byID[g.ID] = g
	}

	out := make(Selections, len(sel))
	for groupID, ids := range sel {
		g, ok := byID[groupID]
		if !ok {
			return nil, ErrUnknownGroup
		}

		var picked []string
		for _, id := range ids {
			if _, ok := g.option(id); !ok {
				return nil, ErrUnknownOption
			}
			if !slices.Contains(picked, id) {
				picked = append(picked, id)
			}
		}

		if g.Type == ModeSingle && len(picked) > 1 {
			picked = picked[len(picked)-1:]
		}
		if limit := g.limit(); limit > 0 && len(picked) > limit {
			return nil, ErrMaxSelections
		}
		if len(picked) > 0 {
			out[groupID] = picked
		}
	}
	return out, nil
}

// Snapshot copies the chosen options in group order for an order line.
func Snapshot(item Item, sel Selections) []SelectedAddon {
	var out []SelectedAddon
	for _, g := range item.Groups {
		for _, id := range sel[g.ID] {
			o, ok := g.option(id)
			if !ok {
				continue
			}
			out = append(out, SelectedAddon{
				GroupID:    g.ID,
				GroupName:  g.Name,
				OptionID:   o.ID,
				OptionName: o.Name,
				Price:      o.Price,
			})
		}
	}
	return out
}
