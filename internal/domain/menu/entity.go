// internal/domain/menu/entity.go
package menu

// VariantOption represents a single choice inside a variant group
type VariantOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// VariantGroup represents a single-choice customization axis (e.g. size)
type VariantGroup struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Required bool            `json:"required,omitempty"`
	Options  []VariantOption `json:"options"`
}

// ExtraOption represents a single choice inside an extra group
type ExtraOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ExtraGroup represents a multi-choice customization axis (e.g. toppings).
// MaxSelect of 0 means unbounded.
type ExtraGroup struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	MaxSelect int           `json:"maxSelect,omitempty"`
	Options   []ExtraOption `json:"options"`
}

// Item represents a catalog entry. The catalog document is read-only;
// items are loaded once at startup and never mutated.
type Item struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category"`
	BasePrice   float64        `json:"basePrice"`
	Image       string         `json:"image"`
	Variants    []VariantGroup `json:"variants,omitempty"`
	Extras      []ExtraGroup   `json:"extras,omitempty"`
}

// FindOption resolves an option id inside the group
func (g VariantGroup) FindOption(optionID string) (VariantOption, bool) {
	for _, option := range g.Options {
		if option.ID == optionID {
			return option, true
		}
	}
	return VariantOption{}, false
}

// FindOption resolves an option id inside the group
func (g ExtraGroup) FindOption(optionID string) (ExtraOption, bool) {
	for _, option := range g.Options {
		if option.ID == optionID {
			return option, true
		}
	}
	return ExtraOption{}, false
}

// FindVariantGroup resolves a variant group id on the item
func (i Item) FindVariantGroup(groupID string) (VariantGroup, bool) {
	for _, group := range i.Variants {
		if group.ID == groupID {
			return group, true
		}
	}
	return VariantGroup{}, false
}

// FindExtraGroup resolves an extra group id on the item
func (i Item) FindExtraGroup(groupID string) (ExtraGroup, bool) {
	for _, group := range i.Extras {
		if group.ID == groupID {
			return group, true
		}
	}
	return ExtraGroup{}, false
}
