// internal/interfaces/http/handlers/menu.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/menu-storefront/internal/config"
	"github.com/your-org/menu-storefront/internal/domain/menu"
	"github.com/your-org/menu-storefront/internal/domain/pricing"
	"github.com/your-org/menu-storefront/internal/domain/storefront"
)

// MenuHandler handles catalog endpoints
type MenuHandler struct {
	catalog    *menu.Service
	storefront *storefront.Service
	config     *config.Config
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(catalog *menu.Service, sf *storefront.Service, cfg *config.Config) *MenuHandler {
	return &MenuHandler{
		catalog:    catalog,
		storefront: sf,
		config:     cfg,
	}
}

// menuItemResponse decorates a catalog item with its display pricing
type menuItemResponse struct {
	menu.Item
	StartingPrice          float64 `json:"startingPrice"`
	StartingPriceFormatted string  `json:"startingPriceFormatted"`
}

// GetMenu handles GET /menu
func (h *MenuHandler) GetMenu(c *gin.Context) {
	var items []menu.Item
	if category := c.Query("category"); category != "" {
		items = h.catalog.ItemsByCategory(category)
	} else {
		items = h.catalog.Items()
	}

	currency := h.storefront.Config().Currency
	responses := make([]menuItemResponse, len(items))
	for i, item := range items {
		responses[i] = h.decorate(item, currency)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu retrieved successfully",
		"data":    responses,
	})
}

// GetCategories handles GET /menu/categories
func (h *MenuHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.catalog.Categories(),
	})
}

// GetMenuItem handles GET /menu/:id
func (h *MenuHandler) GetMenuItem(c *gin.Context) {
	item, ok := h.catalog.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Producto no encontrado.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu item retrieved successfully",
		"data":    h.decorate(item, h.storefront.Config().Currency),
	})
}

func (h *MenuHandler) decorate(item menu.Item, currency string) menuItemResponse {
	starting := pricing.StartingPrice(item)
	return menuItemResponse{
		Item:                   item,
		StartingPrice:          starting,
		StartingPriceFormatted: pricing.FormatMoney(starting, currency),
	}
}
