// internal/domain/selection/builder.go
package selection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/menu-storefront/internal/domain/cart"
	"github.com/your-org/menu-storefront/internal/domain/menu"
	"github.com/your-org/menu-storefront/internal/pkg/idgen"
)

// ErrRequiredVariantMissing blocks Build while a required variant group
// has no resolved choice.
var ErrRequiredVariantMissing = errors.New("selection: required variant group has no choice")

// OptionLimitError reports a rejected extra toggle that would exceed a
// group's MaxSelect. The message is the group-scoped text shown inline.
type OptionLimitError struct {
	GroupID   string
	MaxSelect int
}

func (e *OptionLimitError) Error() string {
	return fmt.Sprintf("Maximo %d seleccion(es).", e.MaxSelect)
}

// Builder accumulates an in-progress customization of one product and
// normalizes it into a priced cart line. Selections referencing unknown
// groups or options are held without error and simply emit nothing, so
// invalid in-progress state never crashes the flow.
type Builder struct {
	product    menu.Item
	cartItemID string

	quantity    int
	notes       string
	variants    map[string]string
	extras      map[string][]string
	extraErrors map[string]string
}

// NewBuilder starts a customization for a product. Confirming allocates
// a fresh cart line id.
func NewBuilder(product menu.Item) *Builder {
	return &Builder{
		product:     product,
		quantity:    1,
		variants:    make(map[string]string),
		extras:      make(map[string][]string),
		extraErrors: make(map[string]string),
	}
}

// NewBuilderFromItem starts a customization pre-loaded from an existing
// cart line. Confirming reuses that line's id, so saving edits is an
// identity-preserving update.
func NewBuilderFromItem(product menu.Item, item cart.Item) *Builder {
	b := NewBuilder(product)
	b.cartItemID = item.CartItemID
	b.quantity = item.Quantity
	if b.quantity < 1 {
		b.quantity = 1
	}
	b.notes = item.Notes

	for _, sel := range item.VariantSelections {
		b.variants[sel.GroupID] = sel.OptionID
	}
	for _, sel := range item.ExtraSelections {
		b.extras[sel.GroupID] = append(b.extras[sel.GroupID], sel.OptionID)
	}
	return b
}

// SelectVariant records the single choice for a variant group,
// replacing any previous choice in that group.
func (b *Builder) SelectVariant(groupID, optionID string) {
	b.variants[groupID] = optionID
}

// ToggleExtra flips an extra option. Toggling off always succeeds and
// clears the group's error. Toggling on is rejected, leaving the
// selection unchanged, when it would exceed the group's MaxSelect; the
// returned error is also recorded as the group's inline message.
func (b *Builder) ToggleExtra(groupID, optionID string) error {
	selected := b.extras[groupID]
	for i, id := range selected {
		if id == optionID {
			b.extras[groupID] = append(selected[:i:i], selected[i+1:]...)
			delete(b.extraErrors, groupID)
			return nil
		}
	}

	group, ok := b.product.FindExtraGroup(groupID)
	if ok && group.MaxSelect > 0 && len(selected) >= group.MaxSelect {
		err := &OptionLimitError{GroupID: groupID, MaxSelect: group.MaxSelect}
		b.extraErrors[groupID] = err.Error()
		return err
	}

	b.extras[groupID] = append(selected, optionID)
	delete(b.extraErrors, groupID)
	return nil
}

// ExtraError returns the inline error recorded for an extra group
func (b *Builder) ExtraError(groupID string) string {
	return b.extraErrors[groupID]
}

// SetQuantity sets the line quantity, clamped to a minimum of 1
func (b *Builder) SetQuantity(quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	b.quantity = quantity
}

// Increment raises the quantity by one
func (b *Builder) Increment() {
	b.quantity++
}

// Decrement lowers the quantity by one, clamped at 1
func (b *Builder) Decrement() {
	if b.quantity > 1 {
		b.quantity--
	}
}

// Quantity returns the current quantity
func (b *Builder) Quantity() int {
	return b.quantity
}

// SetNotes records the free-text note for the line
func (b *Builder) SetNotes(notes string) {
	b.notes = notes
}

// MissingRequiredVariant reports whether any required variant group
// still has no resolved choice. Build refuses while this is true.
func (b *Builder) MissingRequiredVariant() bool {
	for _, group := range b.product.Variants {
		if !group.Required {
			continue
		}
		optionID, chosen := b.variants[group.ID]
		if !chosen {
			return true
		}
		if _, ok := group.FindOption(optionID); !ok {
			return true
		}
	}
	return false
}

// MissingRequiredGroups lists the required variant groups with no
// resolved choice, for per-group inline indicators.
func (b *Builder) MissingRequiredGroups() []menu.VariantGroup {
	var missing []menu.VariantGroup
	for _, group := range b.product.Variants {
		if !group.Required {
			continue
		}
		optionID, chosen := b.variants[group.ID]
		if !chosen {
			missing = append(missing, group)
			continue
		}
		if _, ok := group.FindOption(optionID); !ok {
			missing = append(missing, group)
		}
	}
	return missing
}

// Preview renders the current state as a cart line without confirming
// it. Existing lines keep their id; new lines preview as "preview".
func (b *Builder) Preview() cart.Item {
	id := b.cartItemID
	if id == "" {
		id = "preview"
	}
	return b.buildItem(id)
}

// Build confirms the customization into a cart line. It fails while a
// required variant group has no resolved choice. New lines get an id
// from the generator; lines opened for editing keep their original id.
func (b *Builder) Build(gen idgen.Generator) (cart.Item, error) {
	if b.MissingRequiredVariant() {
		return cart.Item{}, ErrRequiredVariantMissing
	}

	id := b.cartItemID
	if id == "" {
		id = gen.NewID()
	}
	return b.buildItem(id), nil
}

func (b *Builder) buildItem(id string) cart.Item {
	return cart.Item{
		CartItemID:        id,
		ProductID:         b.product.ID,
		Name:              b.product.Name,
		BasePrice:         b.product.BasePrice,
		Quantity:          b.quantity,
		Notes:             strings.TrimSpace(b.notes),
		VariantSelections: b.buildVariantSelections(),
		ExtraSelections:   b.buildExtraSelections(),
	}
}

// buildVariantSelections emits one snapshot per variant group whose
// choice resolves to a real option; anything else emits nothing.
func (b *Builder) buildVariantSelections() []cart.SelectedOption {
	selections := []cart.SelectedOption{}
	for _, group := range b.product.Variants {
		optionID, chosen := b.variants[group.ID]
		if !chosen {
			continue
		}
		option, ok := group.FindOption(optionID)
		if !ok {
			continue
		}
		selections = append(selections, cart.SelectedOption{
			GroupID:   group.ID,
			GroupName: group.Name,
			OptionID:  option.ID,
			Name:      option.Name,
			Price:     option.Price,
		})
	}
	return selections
}

// buildExtraSelections emits snapshots in group order, preserving the
// toggle insertion order within each group.
func (b *Builder) buildExtraSelections() []cart.SelectedOption {
	selections := []cart.SelectedOption{}
	for _, group := range b.product.Extras {
		for _, optionID := range b.extras[group.ID] {
			option, ok := group.FindOption(optionID)
			if !ok {
				continue
			}
			selections = append(selections, cart.SelectedOption{
				GroupID:   group.ID,
				GroupName: group.Name,
				OptionID:  option.ID,
				Name:      option.Name,
				Price:     option.Price,
			})
		}
	}
	return selections
}
