// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/menu-storefront/internal/config"
	"github.com/your-org/menu-storefront/internal/domain/menu"
	"github.com/your-org/menu-storefront/internal/domain/schedule"
	"github.com/your-org/menu-storefront/internal/domain/storefront"
	"github.com/your-org/menu-storefront/internal/infrastructure/storage"
	"github.com/your-org/menu-storefront/internal/interfaces/http/handlers"
	"github.com/your-org/menu-storefront/internal/interfaces/http/middleware"
	"github.com/your-org/menu-storefront/internal/pkg/idgen"
	"github.com/your-org/menu-storefront/internal/pkg/ticket"
)

// Deps carries the collaborators the route handlers need
type Deps struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Catalog    *menu.Service
	Storefront *storefront.Service
	Storage    storage.Store
	IDGen      idgen.Generator
	Watcher    *schedule.Watcher
	Tickets    *ticket.Service
}

// SetupMenuRoutes sets up catalog related routes
func SetupMenuRoutes(rg *gin.RouterGroup, deps Deps) {
	menuHandler := handlers.NewMenuHandler(deps.Catalog, deps.Storefront, deps.Config)

	menuGroup := rg.Group("/menu")
	{
		menuGroup.GET("", menuHandler.GetMenu)
		menuGroup.GET("/categories", menuHandler.GetCategories)
		menuGroup.GET("/:id", menuHandler.GetMenuItem)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, deps Deps) {
	cartHandler := handlers.NewCartHandler(deps.Catalog, deps.Storefront, deps.Storage, deps.IDGen, deps.Config, deps.Logger)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCheckoutRoutes sets up order submission routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, deps Deps) {
	checkoutHandler := handlers.NewCheckoutHandler(deps.Storefront, deps.Storage, deps.Tickets, deps.Config, deps.Logger)

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.POST("/whatsapp", checkoutHandler.SubmitWhatsApp)
		checkoutGroup.POST("/ticket", checkoutHandler.PrintTicket)
	}
}

// SetupStatusRoutes sets up the public status route
func SetupStatusRoutes(rg *gin.RouterGroup, deps Deps) {
	statusHandler := handlers.NewStatusHandler(deps.Storefront, deps.Watcher)

	rg.GET("/status", statusHandler.GetStatus)
}

// SetupAdminRoutes sets up the operator routes
func SetupAdminRoutes(rg *gin.RouterGroup, deps Deps) {
	adminHandler := handlers.NewAdminHandler(deps.Catalog, deps.Storefront, deps.Config, deps.Logger)

	adminGroup := rg.Group("/admin")
	{
		adminGroup.POST("/login", adminHandler.Login)

		protected := adminGroup.Group("")
		protected.Use(middleware.AdminAuth(deps.Config))
		{
			protected.POST("/reload", adminHandler.Reload)
		}
	}
}
