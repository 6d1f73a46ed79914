// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/menu-storefront/internal/config"
	"github.com/your-org/menu-storefront/internal/domain/menu"
	"github.com/your-org/menu-storefront/internal/domain/storefront"
	"github.com/your-org/menu-storefront/internal/pkg/auth"
)

// AdminHandler handles the operator endpoints
type AdminHandler struct {
	catalog    *menu.Service
	storefront *storefront.Service
	jwt        *auth.JWTManager
	keys       *auth.KeyManager
	config     *config.Config
	logger     *logrus.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(catalog *menu.Service, sf *storefront.Service, cfg *config.Config, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		catalog:    catalog,
		storefront: sf,
		jwt:        auth.NewJWTManager(cfg),
		keys:       auth.NewKeyManager(cfg),
		config:     cfg,
		logger:     logger,
	}
}

// LoginRequest carries the operator key
type LoginRequest struct {
	Key string `json:"key" binding:"required"`
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.keys.VerifyKey(req.Key); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid operator key",
		})
		return
	}

	token, err := h.jwt.GenerateAdminToken()
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate admin token")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"token": token,
		},
	})
}

// Reload handles POST /admin/reload: re-reads the catalog and business
// configuration documents. A failing document keeps its previous state.
func (h *AdminHandler) Reload(c *gin.Context) {
	if err := h.catalog.Reload(); err != nil {
		h.logger.WithError(err).Error("Catalog reload failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Catalog reload failed",
			"details": err.Error(),
		})
		return
	}

	if err := h.storefront.Reload(); err != nil {
		h.logger.WithError(err).Error("Storefront configuration reload failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Storefront configuration reload failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Documents reloaded successfully",
		"data": gin.H{
			"catalog_items": h.catalog.Count(),
		},
	})
}
