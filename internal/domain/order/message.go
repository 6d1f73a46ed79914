// internal/domain/order/message.go
package order

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/your-org/menu-storefront/internal/domain/cart"
	"github.com/your-org/menu-storefront/internal/domain/pricing"
	"github.com/your-org/menu-storefront/internal/domain/storefront"
)

const separator = "--------------------------------"

var nonDigits = regexp.MustCompile(`\D`)

// BuildWhatsAppMessage renders the order summary handed to the chat
// channel. Output is deterministic given its inputs; now only feeds the
// display timestamp in the header and never affects totals. All prices
// come from the pricing package, never recomputed here.
func BuildWhatsAppMessage(items []cart.Item, details Details, cfg storefront.Config, now time.Time) string {
	subtotal := pricing.CartSubtotal(items)
	var deliveryFee float64
	if details.Type == TypeDelivery {
		deliveryFee = cfg.DeliveryFee
	}
	total := subtotal + deliveryFee

	var lines []string

	lines = append(lines, fmt.Sprintf("*%s*", strings.ToUpper(cfg.BusinessName)))
	lines = append(lines, fmt.Sprintf("📅 %s", now.Format("02/01/2006 15:04")))
	lines = append(lines, fmt.Sprintf("📄 Tipo: *%s*", TypeLabel(details.Type)))
	lines = append(lines, separator)

	switch details.Type {
	case TypeMesa:
		lines = append(lines, fmt.Sprintf("📍 *Mesa:* %s", orPlaceholder(details.TableNumber, "N/A")))
	case TypePickup:
		lines = append(lines, fmt.Sprintf("👤 *Cliente:* %s", orPlaceholder(details.PickupName, "No especificado")))
		if strings.TrimSpace(details.PickupTime) != "" {
			lines = append(lines, fmt.Sprintf("⏰ *Hora:* %s", details.PickupTime))
		}
	case TypeDelivery:
		lines = append(lines, fmt.Sprintf("👤 *Cliente:* %s", orPlaceholder(details.DeliveryName, "No especificado")))
		lines = append(lines, fmt.Sprintf("📍 *Dirección:* %s", orPlaceholder(details.DeliveryAddress, "No especificada")))
		if strings.TrimSpace(details.DeliveryReferences) != "" {
			lines = append(lines, fmt.Sprintf("🗺️ *Ref:* %s", details.DeliveryReferences))
		}
		if strings.TrimSpace(details.DeliveryPhone) != "" {
			lines = append(lines, fmt.Sprintf("📞 *Tel:* %s", details.DeliveryPhone))
		}
		if strings.TrimSpace(details.DeliveryNotes) != "" {
			lines = append(lines, fmt.Sprintf("📝 *Nota:* %s", details.DeliveryNotes))
		}
	}

	lines = append(lines, separator)
	lines = append(lines, "*📝 RESUMEN DEL PEDIDO:*")
	lines = append(lines, "")

	for _, item := range items {
		unit := pricing.UnitPrice(item)
		itemTotal := pricing.LineTotal(item)

		lines = append(lines, fmt.Sprintf("▪️ *%d x %s*", item.Quantity, item.Name))
		lines = append(lines, fmt.Sprintf("   (Unit: %s)", pricing.FormatMoney(unit, cfg.Currency)))

		for _, option := range item.VariantSelections {
			lines = append(lines, fmt.Sprintf("   └ _%s: %s_", option.GroupName, option.Name))
		}
		for _, option := range item.ExtraSelections {
			lines = append(lines, fmt.Sprintf("   └ + %s", option.Name))
		}

		if strings.TrimSpace(item.Notes) != "" {
			lines = append(lines, fmt.Sprintf("   ⚠️ Nota: %s", item.Notes))
		}

		lines = append(lines, fmt.Sprintf("   💲 Sub: %s", pricing.FormatMoney(itemTotal, cfg.Currency)))
		lines = append(lines, "")
	}

	lines = append(lines, separator)
	lines = append(lines, fmt.Sprintf("💰 *Subtotal:* %s", pricing.FormatMoney(subtotal, cfg.Currency)))
	if deliveryFee > 0 {
		lines = append(lines, fmt.Sprintf("🛵 *Envío:* %s", pricing.FormatMoney(deliveryFee, cfg.Currency)))
	}
	lines = append(lines, fmt.Sprintf("💵 *TOTAL A PAGAR: %s*", pricing.FormatMoney(total, cfg.Currency)))
	lines = append(lines, separator)

	if cfg.HoursText != "" {
		lines = append(lines, fmt.Sprintf("🕒 Horario: %s", cfg.HoursText))
	}

	lines = append(lines, "")
	lines = append(lines, "✅ _Envía este mensaje para confirmar tu pedido._")

	return strings.Join(lines, "\n")
}

// BuildWhatsAppURL derives the deep link that opens the chat channel
// with the message pre-filled. The destination number is always emitted
// digits-only, whatever formatting it arrives with.
func BuildWhatsAppURL(whatsappNumber, message string) string {
	cleanNumber := nonDigits.ReplaceAllString(whatsappNumber, "")
	return fmt.Sprintf("https://wa.me/%s?text=%s", cleanNumber, encodeMessage(message))
}

// orPlaceholder substitutes a fixed placeholder for blank fields so the
// rendered block always names every required field.
func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// encodeMessage percent-encodes the message body, using %20 for spaces
// as chat clients expect rather than the form-encoding plus sign.
func encodeMessage(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
