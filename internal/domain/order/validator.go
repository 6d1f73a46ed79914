// internal/domain/order/validator.go
package order

import (
	"fmt"
	"strings"

	"github.com/your-org/menu-storefront/internal/domain/pricing"
	"github.com/your-org/menu-storefront/internal/domain/storefront"
)

// ValidationResult carries the verdict and every collected message.
// Callers show all errors together, never just the first.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks an order against the business configuration before
// submission. Error order is fixed: minimum-order first, then the
// per-type required fields. An empty cart is the caller's precondition,
// not part of this contract.
func Validate(details Details, subtotal float64, cfg storefront.Config) ValidationResult {
	var errs []string

	if cfg.MinOrder != nil && subtotal < *cfg.MinOrder {
		errs = append(errs, fmt.Sprintf("El pedido minimo es %s.",
			pricing.FormatMoney(*cfg.MinOrder, cfg.Currency)))
	}

	switch details.Type {
	case TypeMesa:
		if strings.TrimSpace(details.TableNumber) == "" {
			errs = append(errs, "Ingresa el numero de mesa.")
		}
	case TypePickup:
		if strings.TrimSpace(details.PickupName) == "" {
			errs = append(errs, "Ingresa tu nombre para retiro.")
		}
	case TypeDelivery:
		if strings.TrimSpace(details.DeliveryName) == "" {
			errs = append(errs, "Ingresa tu nombre para la entrega.")
		}
		if strings.TrimSpace(details.DeliveryAddress) == "" {
			errs = append(errs, "Ingresa la direccion de entrega.")
		}
		if strings.TrimSpace(details.DeliveryReferences) == "" {
			errs = append(errs, "Ingresa referencias para la entrega.")
		}
	}

	return ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
