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

	"github.com/batcheasycook/batchcook-api/internal/auth"
	"github.com/batcheasycook/batchcook-api/internal/config"
	"github.com/batcheasycook/batchcook-api/internal/grocery"
	"github.com/batcheasycook/batchcook-api/internal/handlers"
	"github.com/batcheasycook/batchcook-api/internal/middleware"
	"github.com/batcheasycook/batchcook-api/internal/repository"
	"github.com/batcheasycook/batchcook-api/internal/service"
	"github.com/batcheasycook/batchcook-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Local development convenience; a missing .env is not an error
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting batch cooking api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize repositories. Requests and users persist to a JSON file
	// when DATA_FILE is set, otherwise they live in memory.
	dishRepo := repository.NewInMemoryDishRepository()
	menuRepo := repository.NewInMemoryMenuRepository()

	var requestRepo repository.RequestRepository
	var userRepo repository.UserRepository
	if cfg.Store.DataFile != "" {
		store, err := repository.NewFileStore(cfg.Store.DataFile)
		if err != nil {
			log.Error("failed to open data file", "path", cfg.Store.DataFile, "error", err)
			os.Exit(1)
		}
		log.Info("using file store", "path", cfg.Store.DataFile)
		requestRepo = store.Requests()
		userRepo = store.Users()
	} else {
		log.Info("using in-memory store")
		requestRepo = repository.NewInMemoryRequestRepository()
		userRepo = repository.NewInMemoryUserRepository()
	}

	// Initialize services
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	dishService := service.NewDishService(dishRepo, menuRepo)
	requestService := service.NewRequestService(requestRepo)
	authService := service.NewAuthService(userRepo, tokens, cfg.Auth)
	groceryClient := grocery.NewClient(cfg.Grocery, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	dishHandler := handlers.NewDishHandler(dishService, log)
	cartHandler := handlers.NewCartHandler(dishService, log)
	requestHandler := handlers.NewRequestHandler(requestService, authService, log)
	authHandler := handlers.NewAuthHandler(authService, log)
	adminHandler := handlers.NewAdminHandler(authService, requestService, log)
	groceryHandler := handlers.NewGroceryHandler(groceryClient, log)

	groceryLimiter := middleware.NewRateLimiter(cfg.Grocery.RateLimitRPS, cfg.Grocery.RateBurst)

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
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/dishes", dishHandler.ListDishes)
		r.Get("/dishes/{dishId}", dishHandler.GetDish)
		r.Get("/menus", dishHandler.ListMenus)

		// Cart pricing
		r.Post("/cart/quote", cartHandler.Quote)

		// Batch cooking requests
		r.Post("/batch-cooking-requests", requestHandler.Submit)
		r.Get("/batch-cooking-requests", requestHandler.List)
		r.Get("/batch-cooking-requests/{requestId}", requestHandler.Get)

		// Accounts
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/admin/login", adminHandler.Login)

		// Grocery partner sync, throttled per client
		r.With(groceryLimiter.Limit).Post("/grocery/sync", groceryHandler.Sync)

		// Endpoints requiring a user session
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(tokens))
			r.Get("/auth/profile", authHandler.Profile)
			r.Post("/user/batch-cooking-requests", requestHandler.SubmitForUser)
			r.Get("/user/batch-cooking-requests", requestHandler.ListForUser)
		})

		// Endpoints requiring an admin session
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(tokens))
			r.Use(middleware.AdminOnly)
			r.Get("/admin/batch-cooking-requests", adminHandler.ListRequests)
			r.Patch("/admin/batch-cooking-requests/{requestId}", adminHandler.UpdateRequest)
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
