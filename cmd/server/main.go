package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"github.com/streetbrew/coffee-cart-api/internal/config"
	"github.com/streetbrew/coffee-cart-api/internal/coupon"
	"github.com/streetbrew/coffee-cart-api/internal/handlers"
	"github.com/streetbrew/coffee-cart-api/internal/middleware"
	"github.com/streetbrew/coffee-cart-api/internal/repository"
	"github.com/streetbrew/coffee-cart-api/internal/service"
	"github.com/streetbrew/coffee-cart-api/internal/session"
	"github.com/streetbrew/coffee-cart-api/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting coffee cart api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize promo code validator when campaign sources are configured
	promoValidator := coupon.NewValidator()
	if len(cfg.Promo.Sources) > 0 {
		log.Info("loading promo campaign lists...", "sources", len(cfg.Promo.Sources))
		if err := promoValidator.Load(context.Background(), cfg.Promo.Sources); err != nil {
			log.Error("failed to load promo campaign lists", "error", err)
			os.Exit(1)
		}
		stats := promoValidator.Stats()
		log.Info("promo campaign lists loaded",
			"total_files", stats["total_files"],
			"total_codes", stats["total_codes"],
		)
	}

	// Select the session cart store
	var cartStore session.CartStore
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		cartStore = session.NewRedisStore(client, time.Duration(cfg.Redis.CartTTLMin)*time.Minute)
		log.Info("using redis session cart store", "addr", cfg.Redis.Addr)
	} else {
		cartStore = session.NewMemoryStore()
		log.Info("using in-memory session cart store")
	}

	// Initialize repositories
	storefrontRepo := repository.NewInMemoryStorefrontRepository()
	couponRepo := repository.NewInMemoryCouponRepository()
	orderRepo := repository.NewInMemoryOrderRepository()

	// Initialize services
	storefrontService := service.NewStorefrontService(storefrontRepo)
	cartService := service.NewCartService(cartStore, storefrontRepo, couponRepo, orderRepo, promoValidator, log)
	orderService := service.NewOrderService(orderRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	storefrontHandler := handlers.NewStorefrontHandler(storefrontService, log)
	cartHandler := handlers.NewCartHandler(cartService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	promoHandler := handlers.NewPromoHandler(promoValidator, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "api_key", middleware.SessionHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Storefront catalog
		r.Get("/storefront", storefrontHandler.ListStorefronts)
		r.Get("/storefront/{storefrontId}", storefrontHandler.GetStorefront)

		// Order history
		r.Get("/order", orderHandler.ListOrders)
		r.Get("/order/{orderId}", orderHandler.GetOrder)

		// Promo code validation
		r.Get("/promo/stats", promoHandler.GetStats)
		r.Get("/promo/{code}", promoHandler.ValidateCode)

		// Session cart and checkout
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))
			r.Use(middleware.RequireSession)

			r.Get("/cart", cartHandler.GetCart)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Put("/cart/items/{itemId}", cartHandler.UpdateQuantity)
			r.Delete("/cart/items/{itemId}", cartHandler.RemoveItem)
			r.Post("/cart/coupon", cartHandler.SelectCoupon)
			r.Post("/checkout", cartHandler.Checkout)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
