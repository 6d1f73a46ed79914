// internal/domain/pricing/pricing.go
package pricing

import (
	"github.com/your-org/menu-storefront/internal/domain/cart"
	"github.com/your-org/menu-storefront/internal/domain/menu"
)

// UnitPrice computes the price of one unit of a cart line: the base
// price snapshot plus every selected variant and extra option.
func UnitPrice(item cart.Item) float64 {
	total := item.BasePrice
	for _, option := range item.VariantSelections {
		total += option.Price
	}
	for _, option := range item.ExtraSelections {
		total += option.Price
	}
	return total
}

// LineTotal computes unit price times quantity
func LineTotal(item cart.Item) float64 {
	return UnitPrice(item) * float64(item.Quantity)
}

// CartSubtotal sums line totals over all lines; an empty cart is 0
func CartSubtotal(items []cart.Item) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += LineTotal(item)
	}
	return subtotal
}

// StartingPrice computes a product's "from" display price: base price
// plus the cheapest option of every required variant group. Optional
// groups and extras never contribute. A required group with no options
// contributes 0, so this is a display estimate rather than a guaranteed
// lower bound.
func StartingPrice(product menu.Item) float64 {
	total := product.BasePrice
	for _, group := range product.Variants {
		if !group.Required || len(group.Options) == 0 {
			continue
		}
		min := group.Options[0].Price
		for _, option := range group.Options[1:] {
			if option.Price < min {
				min = option.Price
			}
		}
		total += min
	}
	return total
}
