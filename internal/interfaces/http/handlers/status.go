// internal/interfaces/http/handlers/status.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/menu-storefront/internal/domain/order"
	"github.com/your-org/menu-storefront/internal/domain/schedule"
	"github.com/your-org/menu-storefront/internal/domain/storefront"
)

// StatusHandler exposes the storefront's public state
type StatusHandler struct {
	storefront *storefront.Service
	watcher    *schedule.Watcher
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(sf *storefront.Service, watcher *schedule.Watcher) *StatusHandler {
	return &StatusHandler{
		storefront: sf,
		watcher:    watcher,
	}
}

// GetStatus handles GET /status
func (h *StatusHandler) GetStatus(c *gin.Context) {
	cfg := h.storefront.Config()

	c.JSON(http.StatusOK, gin.H{
		"message": "Status retrieved successfully",
		"data": gin.H{
			"business_name": cfg.BusinessName,
			"open":          h.watcher.Open(),
			"hours_text":    cfg.HoursText,
			"address_text":  cfg.AddressText,
			"currency":      cfg.Currency,
			"order_types":   order.EnabledTypes(cfg.OrderTypes),
			"min_order":     cfg.MinOrder,
			"delivery_fee":  cfg.DeliveryFee,
		},
	})
}
