// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/menu-storefront/internal/config"
	"github.com/your-org/menu-storefront/internal/domain/cart"
	"github.com/your-org/menu-storefront/internal/domain/order"
	"github.com/your-org/menu-storefront/internal/domain/pricing"
	"github.com/your-org/menu-storefront/internal/domain/storefront"
	"github.com/your-org/menu-storefront/internal/infrastructure/storage"
	"github.com/your-org/menu-storefront/internal/pkg/ticket"
)

// CheckoutHandler composes validated orders into the WhatsApp handoff
type CheckoutHandler struct {
	storefront *storefront.Service
	storage    storage.Store
	tickets    *ticket.Service
	config     *config.Config
	logger     *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(sf *storefront.Service, st storage.Store, tickets *ticket.Service, cfg *config.Config, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		storefront: sf,
		storage:    st,
		tickets:    tickets,
		config:     cfg,
		logger:     logger,
	}
}

// CheckoutRequest carries the order-type-specific contact fields
type CheckoutRequest struct {
	Type               order.Type `json:"type" binding:"required"`
	TableNumber        string     `json:"tableNumber"`
	PickupName         string     `json:"pickupName"`
	PickupTime         string     `json:"pickupTime"`
	DeliveryName       string     `json:"deliveryName"`
	DeliveryAddress    string     `json:"deliveryAddress"`
	DeliveryReferences string     `json:"deliveryReferences"`
	DeliveryPhone      string     `json:"deliveryPhone"`
	DeliveryNotes      string     `json:"deliveryNotes"`
}

// checkoutResult is everything a submission produces: the rendered
// message, the deep link, and the totals it was built from.
type checkoutResult struct {
	Subtotal          float64 `json:"subtotal"`
	SubtotalFormatted string  `json:"subtotal_formatted"`
	DeliveryFee       float64 `json:"delivery_fee,omitempty"`
	Total             float64 `json:"total"`
	TotalFormatted    string  `json:"total_formatted"`
	Message           string  `json:"whatsapp_message"`
	URL               string  `json:"whatsapp_url"`
}

// SubmitWhatsApp handles POST /checkout/whatsapp
func (h *CheckoutHandler) SubmitWhatsApp(c *gin.Context) {
	result, ok := h.compose(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order composed successfully",
		"data":    result,
	})
}

// PrintTicket handles POST /checkout/ticket
func (h *CheckoutHandler) PrintTicket(c *gin.Context) {
	result, ok := h.compose(c)
	if !ok {
		return
	}

	pdf, err := h.tickets.GenerateTicket(result.Message, h.storefront.Config())
	if err != nil {
		h.logger.WithError(err).Error("Failed to render order ticket")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to render order ticket",
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="ticket.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf.Bytes())
}

// compose runs the full submission pipeline: empty-cart gate, table
// identity pass-through, validation, then message and deep link. On
// failure it writes the error response and returns ok=false.
func (h *CheckoutHandler) compose(c *gin.Context) (*checkoutResult, bool) {
	sessionID := getOrCreateSessionID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return nil, false
	}

	cfg := h.storefront.Config()
	details := order.Details{
		Type:               req.Type,
		TableNumber:        req.TableNumber,
		PickupName:         req.PickupName,
		PickupTime:         req.PickupTime,
		DeliveryName:       req.DeliveryName,
		DeliveryAddress:    req.DeliveryAddress,
		DeliveryReferences: req.DeliveryReferences,
		DeliveryPhone:      req.DeliveryPhone,
		DeliveryNotes:      req.DeliveryNotes,
	}

	if !typeEnabled(details.Type, cfg) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Tipo de pedido no disponible.",
			"errors": []string{"Tipo de pedido no disponible."},
		})
		return nil, false
	}

	// Table identity pass-through: a session bound to a table keeps the
	// externally supplied number when locking is configured.
	if mesa := c.Query("mesa"); mesa != "" {
		if cfg.LockTable() || details.TableNumber == "" {
			details.TableNumber = mesa
		}
	}

	store := cart.NewStore(h.storage, cartKey(h.config, sessionID), h.logger)
	items := store.Items()

	// Empty cart blocks submission before validation runs
	if len(items) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Tu carrito esta vacio.",
			"errors": []string{"Tu carrito esta vacio."},
		})
		return nil, false
	}

	subtotal := pricing.CartSubtotal(items)
	validation := order.Validate(details, subtotal, cfg)
	if !validation.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "El pedido tiene errores.",
			"errors": validation.Errors,
		})
		return nil, false
	}

	message := order.BuildWhatsAppMessage(items, details, cfg, time.Now())
	url := order.BuildWhatsAppURL(cfg.WhatsAppNumber, message)

	var deliveryFee float64
	if details.Type == order.TypeDelivery {
		deliveryFee = cfg.DeliveryFee
	}
	total := subtotal + deliveryFee

	return &checkoutResult{
		Subtotal:          subtotal,
		SubtotalFormatted: pricing.FormatMoney(subtotal, cfg.Currency),
		DeliveryFee:       deliveryFee,
		Total:             total,
		TotalFormatted:    pricing.FormatMoney(total, cfg.Currency),
		Message:           message,
		URL:               url,
	}, true
}

func typeEnabled(t order.Type, cfg storefront.Config) bool {
	for _, enabled := range order.EnabledTypes(cfg.OrderTypes) {
		if enabled == t {
			return true
		}
	}
	return false
}
