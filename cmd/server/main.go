package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/api"
	"github.com/gayaldassanayake/portfolio-manager/internal/config"
	"github.com/gayaldassanayake/portfolio-manager/internal/database"
	"github.com/gayaldassanayake/portfolio-manager/internal/provider"
	"github.com/gayaldassanayake/portfolio-manager/internal/repository"
	"github.com/gayaldassanayake/portfolio-manager/internal/secrets"
	"github.com/gayaldassanayake/portfolio-manager/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	vault, err := secrets.NewVault(cfg.Secrets.FernetKey)
	if err != nil {
		log.Fatalf("Failed to initialize secrets vault: %v", err)
	}

	// Create repositories
	unitTrustRepo := repository.NewUnitTrustRepository(db)
	priceRepo := repository.NewPriceRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	fixedDepositRepo := repository.NewFixedDepositRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Create services
	providers := provider.NewDefaultRegistry()

	systemService := service.NewSystemService(db)
	unitTrustService := service.NewUnitTrustService(
		unitTrustRepo,
		priceRepo,
		transactionRepo,
	)
	priceService := service.NewPriceService(
		priceRepo,
		unitTrustRepo,
		providers,
	)
	transactionService := service.NewTransactionService(
		transactionRepo,
		unitTrustRepo,
	)
	portfolioService := service.NewPortfolioService(
		transactionRepo,
		priceRepo,
	)
	fixedDepositService := service.NewFixedDepositService(
		fixedDepositRepo,
	)
	notificationService := service.NewNotificationService(
		notificationRepo,
		fixedDepositRepo,
		vault,
	)

	// Start background jobs
	scheduler := service.NewScheduler(priceService, notificationService, cfg.Scheduler)
	if cfg.Scheduler.Enabled {
		if err := scheduler.Start(); err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
	}

	// Create router
	router := api.NewRouter(api.Services{
		System:       systemService,
		UnitTrust:    unitTrustService,
		Price:        priceService,
		Transaction:  transactionService,
		Portfolio:    portfolioService,
		FixedDeposit: fixedDepositService,
		Notification: notificationService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	if cfg.Scheduler.Enabled {
		scheduler.Stop()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
