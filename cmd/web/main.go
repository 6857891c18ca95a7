package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"saree-shop/api"
	"saree-shop/api/handlers"
	"saree-shop/internal/config"
	"saree-shop/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services
	productService := services.NewProductService()
	productService.InitSampleData()

	userService := services.NewUserService()
	sessionService := services.NewSessionService(cfg.SessionTTL)
	cartService := services.NewCartService(productService, services.Pricing{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		ShippingFee:           cfg.ShippingFee,
	})

	events := newOrderEvents(cfg)
	orderService := services.NewOrderService(userService, cartService, events)

	// Setup router
	router := api.NewRouter(api.Dependencies{
		Products: productService,
		Users:    userService,
		Sessions: sessionService,
		Carts:    cartService,
		Orders:   orderService,
		Cookie: handlers.SessionCookie{
			Name:   cfg.SessionCookie,
			Secure: cfg.CookieSecure,
		},
		BcryptCost:  cfg.BcryptCost,
		CORSOrigins: cfg.CORSOrigins,
		Debug:       gin.Mode() != gin.ReleaseMode,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sweepSessions(ctx, sessionService, cfg.SessionSweepInterval)

	// Start server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run server in goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Failed to start server: %v", err)
			stop()
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := shutdown(shutdownCtx, server, events); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server shutdown complete")
}

func newOrderEvents(cfg config.Config) services.OrderEvents {
	if !cfg.EventsEnabled() {
		log.Println("No Kafka brokers configured, order events disabled")
		return services.NopOrderEvents{}
	}

	events, err := services.NewKafkaOrderEvents(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		log.Fatalf("Failed to initialize order events: %v", err)
	}
	return events
}

// shutdown stops the server, then closes the order events whether or not
// the server stopped cleanly.
func shutdown(ctx context.Context, server *http.Server, events services.OrderEvents) error {
	err := server.Shutdown(ctx)
	if cerr := events.Close(); cerr != nil {
		log.Printf("Failed to close order events: %v", cerr)
	}
	return err
}

// sweepSessions drops expired sessions until ctx is done.
func sweepSessions(ctx context.Context, sessions *services.SessionService, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.PurgeExpired(); n > 0 {
				log.Printf("Purged %d expired sessions, %d active", n, sessions.Count())
			}
		}
	}
}
