// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/menu-storefront/internal/config"
	"github.com/your-org/menu-storefront/internal/domain/menu"
	"github.com/your-org/menu-storefront/internal/domain/schedule"
	"github.com/your-org/menu-storefront/internal/domain/storefront"
	redisdb "github.com/your-org/menu-storefront/internal/infrastructure/database/redis"
	"github.com/your-org/menu-storefront/internal/infrastructure/storage"
	httpserver "github.com/your-org/menu-storefront/internal/interfaces/http"
	"github.com/your-org/menu-storefront/internal/interfaces/http/middleware"
	"github.com/your-org/menu-storefront/internal/interfaces/http/routes"
	"github.com/your-org/menu-storefront/internal/pkg/idgen"
	"github.com/your-org/menu-storefront/internal/pkg/ticket"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	logger := middleware.NewLogger(cfg)

	// Load the read-only business documents
	catalog, err := menu.NewService(cfg.Storefront.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("📋 Catalog loaded: %d items", catalog.Count())

	sf, err := storefront.NewService(cfg.Storefront.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to load storefront configuration: %v", err)
	}
	log.Printf("🏪 Storefront: %s", sf.Config().BusinessName)

	// Cart persistence: Redis when available, in-memory otherwise.
	// A missing Redis only costs durability, never availability.
	var store storage.Store = storage.NewMemoryStore()
	var redisClient *redisdb.Client
	if cfg.Redis.Enabled {
		redisClient, err = redisdb.NewConnection(cfg)
		if err != nil {
			log.Printf("Warning: Redis unavailable, cart persistence degrades to in-memory: %v", err)
		} else {
			store = storage.NewRedisStore(redisClient.GetClient(), cfg.Storefront.CartTTL)
		}
	}

	// Schedule watcher: the only time-driven background activity
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := schedule.NewWatcher(sf.Schedule, cfg.Storefront.ScheduleInterval, logger)
	go watcher.Run(ctx)

	log.Println("✅ All systems operational!")

	deps := routes.Deps{
		Config:     cfg,
		Logger:     logger,
		Catalog:    catalog,
		Storefront: sf,
		Storage:    store,
		IDGen:      idgen.UUIDGenerator{},
		Watcher:    watcher,
		Tickets:    ticket.NewService(),
	}

	server := httpserver.NewServer(cfg, logger, deps, rawRedis(redisClient))

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutdown signal received")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Printf("Warning: server shutdown error: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Warning: redis close error: %v", err)
		}
	}

	log.Println("👋 Goodbye!")
}

func rawRedis(c *redisdb.Client) *redis.Client {
	if c == nil {
		return nil
	}
	return c.GetClient()
}
