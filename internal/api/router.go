package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/handlers"
	custommiddleware "github.com/gayaldassanayake/portfolio-manager/internal/api/middleware"
	"github.com/gayaldassanayake/portfolio-manager/internal/config"
	"github.com/gayaldassanayake/portfolio-manager/internal/service"
)

// Services bundles the service dependencies the router wires into handlers.
type Services struct {
	System       *service.SystemService
	UnitTrust    *service.UnitTrustService
	Price        *service.PriceService
	Transaction  *service.TransactionService
	Portfolio    *service.PortfolioService
	FixedDeposit *service.FixedDepositService
	Notification *service.NotificationService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/unit-trust", func(r chi.Router) {
			unitTrustHandler := handlers.NewUnitTrustHandler(services.UnitTrust)
			r.Get("/", unitTrustHandler.UnitTrusts)
			r.Post("/", unitTrustHandler.CreateUnitTrust)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", unitTrustHandler.GetUnitTrust)
				r.Put("/", unitTrustHandler.UpdateUnitTrust)
				r.Delete("/", unitTrustHandler.DeleteUnitTrust)
			})
		})

		r.Route("/price", func(r chi.Router) {
			priceHandler := handlers.NewPriceHandler(services.Price)
			r.Post("/", priceHandler.CreatePrice)
			r.Post("/bulk", priceHandler.BulkCreatePrices)
			r.Post("/refresh", priceHandler.RefreshPrices)
			r.Route("/unit-trust/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", priceHandler.PricesPerTrust)
			})
			r.Route("/fetch/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Post("/", priceHandler.FetchPrices)
			})
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", priceHandler.UpdatePrice)
				r.Delete("/", priceHandler.DeletePrice)
			})
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(services.Transaction)
			r.Get("/", transactionHandler.AllTransactions)
			r.Post("/", transactionHandler.CreateTransaction)
			r.Route("/unit-trust/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.TransactionsPerTrust)
			})
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Put("/", transactionHandler.UpdateTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(services.Portfolio)
			r.Get("/summary", portfolioHandler.Summary)
			r.Get("/history", portfolioHandler.History)
			r.Get("/metrics", portfolioHandler.Metrics)
			r.Get("/performance", portfolioHandler.Performance)
		})

		r.Route("/fixed-deposit", func(r chi.Router) {
			fixedDepositHandler := handlers.NewFixedDepositHandler(services.FixedDeposit)
			r.Get("/", fixedDepositHandler.FixedDeposits)
			r.Post("/", fixedDepositHandler.CreateFixedDeposit)
			r.Post("/interest-preview", fixedDepositHandler.PreviewInterest)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", fixedDepositHandler.GetFixedDeposit)
				r.Put("/", fixedDepositHandler.UpdateFixedDeposit)
				r.Delete("/", fixedDepositHandler.DeleteFixedDeposit)
			})
		})

		r.Route("/notification", func(r chi.Router) {
			notificationHandler := handlers.NewNotificationHandler(services.Notification)
			r.Get("/", notificationHandler.Notifications)
			r.Post("/generate", notificationHandler.GenerateNotifications)
			r.Get("/settings", notificationHandler.GetSettings)
			r.Put("/settings", notificationHandler.UpdateSettings)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/dismiss", notificationHandler.DismissNotification)
			})
		})
	})

	return r
}
