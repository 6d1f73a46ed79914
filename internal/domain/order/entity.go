// internal/domain/order/entity.go
package order

import "github.com/your-org/menu-storefront/internal/domain/storefront"

// Type represents the fulfillment mode of an order
type Type string

const (
	TypeMesa     Type = "mesa"
	TypePickup   Type = "pickup"
	TypeDelivery Type = "delivery"
)

// Details carries the order-type-specific contact fields. Which subset
// is required depends on Type; phone, notes and time are always
// optional. Created fresh per session and never persisted.
type Details struct {
	Type               Type   `json:"type"`
	TableNumber        string `json:"tableNumber,omitempty"`
	PickupName         string `json:"pickupName,omitempty"`
	PickupTime         string `json:"pickupTime,omitempty"`
	DeliveryName       string `json:"deliveryName,omitempty"`
	DeliveryAddress    string `json:"deliveryAddress,omitempty"`
	DeliveryReferences string `json:"deliveryReferences,omitempty"`
	DeliveryPhone      string `json:"deliveryPhone,omitempty"`
	DeliveryNotes      string `json:"deliveryNotes,omitempty"`
}

// TypeLabel returns the customer-facing label for a fulfillment mode
func TypeLabel(t Type) string {
	switch t {
	case TypeMesa:
		return "🍽️ En Mesa"
	case TypePickup:
		return "🛍️ Para Llevar (Pickup)"
	case TypeDelivery:
		return "🛵 A Domicilio"
	default:
		return "Orden"
	}
}

// EnabledTypes lists the fulfillment modes the business accepts, in
// mesa, pickup, delivery order. When the configuration disables all of
// them, mesa is the enforced fallback.
func EnabledTypes(enabled storefront.OrderTypesEnabled) []Type {
	var types []Type
	if enabled.Mesa {
		types = append(types, TypeMesa)
	}
	if enabled.Pickup {
		types = append(types, TypePickup)
	}
	if enabled.Delivery {
		types = append(types, TypeDelivery)
	}
	if len(types) == 0 {
		types = []Type{TypeMesa}
	}
	return types
}
