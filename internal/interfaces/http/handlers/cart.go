// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/menu-storefront/internal/config"
	"github.com/your-org/menu-storefront/internal/domain/cart"
	"github.com/your-org/menu-storefront/internal/domain/menu"
	"github.com/your-org/menu-storefront/internal/domain/pricing"
	"github.com/your-org/menu-storefront/internal/domain/selection"
	"github.com/your-org/menu-storefront/internal/domain/storefront"
	"github.com/your-org/menu-storefront/internal/infrastructure/storage"
	"github.com/your-org/menu-storefront/internal/pkg/idgen"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	catalog    *menu.Service
	storefront *storefront.Service
	storage    storage.Store
	idgen      idgen.Generator
	config     *config.Config
	logger     *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(catalog *menu.Service, sf *storefront.Service, st storage.Store, gen idgen.Generator, cfg *config.Config, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		catalog:    catalog,
		storefront: sf,
		storage:    st,
		idgen:      gen,
		config:     cfg,
		logger:     logger,
	}
}

// CartItemRequest carries one customization: the chosen variant option
// per group and the toggled extra options per group, in toggle order.
type CartItemRequest struct {
	ProductID string              `json:"product_id" binding:"required"`
	Quantity  int                 `json:"quantity"`
	Notes     string              `json:"notes"`
	Variants  map[string]string   `json:"variants"`
	Extras    map[string][]string `json:"extras"`
}

// cartLineResponse decorates a cart line with its computed prices
type cartLineResponse struct {
	cart.Item
	UnitPrice          float64 `json:"unitPrice"`
	UnitPriceFormatted string  `json:"unitPriceFormatted"`
	LineTotal          float64 `json:"lineTotal"`
	LineTotalFormatted string  `json:"lineTotalFormatted"`
}

// cartResponse is the full cart view: lines in insertion order plus the
// aggregated subtotal.
type cartResponse struct {
	SessionID         string             `json:"session_id"`
	Items             []cartLineResponse `json:"items"`
	ItemCount         int                `json:"item_count"`
	Subtotal          float64            `json:"subtotal"`
	SubtotalFormatted string             `json:"subtotal_formatted"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	store := h.store(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.respond(sessionID, store),
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item, errs := h.buildItem(req, "")
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "No se pudo agregar el producto.",
			"errors": errs,
		})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Producto no encontrado.",
		})
		return
	}

	store := h.store(sessionID)
	store.Add(*item)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item added to cart successfully",
		"data":    h.respond(sessionID, store),
	})
}

// UpdateItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	store := h.store(sessionID)

	cartItemID := c.Param("id")
	existing, ok := store.Get(cartItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "El producto ya no esta en el carrito.",
		})
		return
	}

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}
	if req.ProductID == "" {
		req.ProductID = existing.ProductID
	}

	item, errs := h.buildItem(req, existing.CartItemID)
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "No se pudo guardar los cambios.",
			"errors": errs,
		})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Producto no encontrado.",
		})
		return
	}

	store.Update(*item)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.respond(sessionID, store),
	})
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	store := h.store(sessionID)

	// Removing an unknown id is a no-op, not an error
	store.Remove(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"data":    h.respond(sessionID, store),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)
	store := h.store(sessionID)
	store.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"data":    h.respond(sessionID, store),
	})
}

// buildItem runs one customization through the selection builder. A nil
// item with no errors means the product does not exist. The returned
// error strings are user-facing, collected across groups.
func (h *CartHandler) buildItem(req CartItemRequest, cartItemID string) (*cart.Item, []string) {
	product, ok := h.catalog.GetByID(req.ProductID)
	if !ok {
		return nil, nil
	}

	builder := selection.NewBuilder(product)
	builder.SetQuantity(req.Quantity)
	builder.SetNotes(req.Notes)

	for groupID, optionID := range req.Variants {
		builder.SelectVariant(groupID, optionID)
	}

	var errs []string
	for groupID, optionIDs := range req.Extras {
		for _, optionID := range optionIDs {
			var limitErr *selection.OptionLimitError
			if err := builder.ToggleExtra(groupID, optionID); errors.As(err, &limitErr) {
				errs = append(errs, limitErr.Error())
			}
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	item, err := builder.Build(h.idgen)
	if err != nil {
		for _, group := range builder.MissingRequiredGroups() {
			errs = append(errs, "Selecciona una opcion de "+group.Name+".")
		}
		return nil, errs
	}

	if cartItemID != "" {
		item.CartItemID = cartItemID
	}
	return &item, nil
}

func (h *CartHandler) store(sessionID string) *cart.Store {
	return cart.NewStore(h.storage, cartKey(h.config, sessionID), h.logger)
}

func (h *CartHandler) respond(sessionID string, store *cart.Store) cartResponse {
	items := store.Items()
	currency := h.storefront.Config().Currency

	lines := make([]cartLineResponse, len(items))
	for i, item := range items {
		unit := pricing.UnitPrice(item)
		total := pricing.LineTotal(item)
		lines[i] = cartLineResponse{
			Item:               item,
			UnitPrice:          unit,
			UnitPriceFormatted: pricing.FormatMoney(unit, currency),
			LineTotal:          total,
			LineTotalFormatted: pricing.FormatMoney(total, currency),
		}
	}

	subtotal := pricing.CartSubtotal(items)
	return cartResponse{
		SessionID:         sessionID,
		Items:             lines,
		ItemCount:         len(items),
		Subtotal:          subtotal,
		SubtotalFormatted: pricing.FormatMoney(subtotal, currency),
	}
}
