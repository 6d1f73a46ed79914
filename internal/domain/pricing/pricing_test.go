// internal/domain/pricing/pricing_test.go
package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/menu-storefront/internal/domain/cart"
	"github.com/your-org/menu-storefront/internal/domain/menu"
)

func TestUnitPrice(t *testing.T) {
	item := cart.Item{
		BasePrice: 15.0,
		Quantity:  1,
		VariantSelections: []cart.SelectedOption{
			{GroupID: "tamano", Name: "Doble", Price: 6.0},
		},
		ExtraSelections: []cart.SelectedOption{
			{GroupID: "toppings", Name: "Queso extra", Price: 2.0},
			{GroupID: "toppings", Name: "Tocino", Price: 3.0},
		},
	}

	assert.Equal(t, 26.0, UnitPrice(item))
}

func TestUnitPriceNoSelections(t *testing.T) {
	item := cart.Item{BasePrice: 6.0, Quantity: 1}

	assert.Equal(t, 6.0, UnitPrice(item))
}

func TestLineTotal(t *testing.T) {
	item := cart.Item{
		BasePrice: 10.0,
		Quantity:  2,
	}

	assert.Equal(t, 20.0, LineTotal(item))
}

func TestLineTotalWithSelections(t *testing.T) {
	item := cart.Item{
		BasePrice: 15.0,
		Quantity:  3,
		VariantSelections: []cart.SelectedOption{
			{Price: 6.0},
		},
		ExtraSelections: []cart.SelectedOption{
			{Price: 1.5},
		},
	}

	// (15 + 6 + 1.5) * 3
	assert.Equal(t, 67.5, LineTotal(item))
}

func TestCartSubtotal(t *testing.T) {
	items := []cart.Item{
		{BasePrice: 10.0, Quantity: 2},
		{BasePrice: 6.0, Quantity: 1},
	}

	assert.Equal(t, 26.0, CartSubtotal(items))
}

func TestCartSubtotalEmptyCart(t *testing.T) {
	assert.Equal(t, 0.0, CartSubtotal(nil))
	assert.Equal(t, 0.0, CartSubtotal([]cart.Item{}))
}

func TestStartingPriceNoRequiredGroups(t *testing.T) {
	product := menu.Item{
		BasePrice: 22.0,
		Variants: []menu.VariantGroup{
			{
				ID: "borde",
				Options: []menu.VariantOption{
					{ID: "clasico", Price: 0},
					{ID: "queso", Price: 4.0},
				},
			},
		},
	}

	assert.Equal(t, 22.0, StartingPrice(product))
}

func TestStartingPriceRequiredGroupAddsMinimum(t *testing.T) {
	product := menu.Item{
		BasePrice: 22.0,
		Variants: []menu.VariantGroup{
			{
				ID:       "tamano",
				Required: true,
				Options: []menu.VariantOption{
					{ID: "familiar", Price: 15.0},
					{ID: "personal", Price: 3.0},
					{ID: "mediana", Price: 8.0},
				},
			},
			{
				ID:       "masa",
				Required: true,
				Options: []menu.VariantOption{
					{ID: "fina", Price: 2.0},
					{ID: "clasica", Price: 5.0},
				},
			},
		},
	}

	// 22 + min(3) + min(2)
	assert.Equal(t, 27.0, StartingPrice(product))
}

func TestStartingPriceRequiredGroupWithoutOptions(t *testing.T) {
	product := menu.Item{
		BasePrice: 10.0,
		Variants: []menu.VariantGroup{
			{ID: "tamano", Required: true},
		},
	}

	// Display estimate: an empty required group contributes 0
	assert.Equal(t, 10.0, StartingPrice(product))
}

func TestStartingPriceExtrasNeverContribute(t *testing.T) {
	product := menu.Item{
		BasePrice: 10.0,
		Extras: []menu.ExtraGroup{
			{
				ID: "toppings",
				Options: []menu.ExtraOption{
					{ID: "queso", Price: 2.0},
				},
			},
		},
	}

	assert.Equal(t, 10.0, StartingPrice(product))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "S/ 26.00", FormatMoney(26.0, "PEN"))
	assert.Equal(t, "$ 10.50", FormatMoney(10.5, "USD"))
	assert.Equal(t, "€ 7.25", FormatMoney(7.25, "EUR"))
}

func TestFormatMoneyUnknownCurrencyFallsBackToCode(t *testing.T) {
	assert.Equal(t, "XYZ 12.00", FormatMoney(12.0, "XYZ"))
}
