package pricing

import (
	"github.com/shopspring/decimal"
)

type SelectionMode string

const (
	ModeSingle   SelectionMode = "single"
	ModeMultiple SelectionMode = "multiple"
)

func (m SelectionMode) Valid() bool {
	return m == ModeSingle || m == ModeMultiple
}

type AddonOption struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type AddonGroup struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Type     SelectionMode `json:"type"`
	Required bool          `json:"required"`
	Min      *int          `json:"min,omitempty"`
	Max      *int          `json:"max,omitempty"`
	Options  []AddonOption `json:"options"`
}

func (g AddonGroup) option(id string) (AddonOption, bool) {
	for _, o := range g.Options {
		if o.ID == id {
			return o, true
		}
	}
	return AddonOption{}, false
}

// limit is the most options a group accepts; 0 means unlimited.
func (g AddonGroup) limit() int {
	if g.Type == ModeSingle {
		return 1
	}
	if g.Max != nil && *g.Max > 0 {
		return *g.Max
	}
	return 0
}

// Item is the priced view of a product: its base price and addon groups.
type Item struct {
	BasePrice decimal.Decimal
	Groups    []AddonGroup
}

// Selections maps an addon group id to the selected option ids.
type Selections map[string][]string

func (s Selections) Clone() Selections {
	out := make(Selections, len(s))
	for k, v := range s {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// SelectedAddon is the frozen copy of one chosen option kept on order lines.
type SelectedAddon struct {
	GroupID    string          `json:"group_id"`
	GroupName  string          `json:"group_name"`
	OptionID   string          `json:"option_id"`
	OptionName string          `json:"option_name"`
	Price      decimal.Decimal `json:"price"`
}
