package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/config"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/catalog"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/customer"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/pos"
	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/pricing"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := sql.Open("postgres", cfg.Server.DatabaseURL)
	if err != nil {
		logger.Fatal("opening database", zap.Error(err))
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatal("pinging database", zap.Error(err))
	}
	logger.Info("connected to database")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog & customers (read side) ─────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	customerRepo := customer.NewPostgresRepository(db)
	customerService := customer.NewService(customerRepo)
	customer.NewHandler(customerService).RegisterRoutes(router)

	// ── Pricing memory ──────────────────────────────────────
	memoryRepo := pricing.NewPostgresMemoryRepository(db)
	pricingService := pricing.NewService(memoryRepo)
	pricing.NewHandler(pricingService).RegisterRoutes(router)

	// ── Register ────────────────────────────────────────────
	holdStore := pos.NewPostgresHoldStore(db)
	txRepo := pos.NewPostgresRepository(db)
	posService := pos.NewService(catalogRepo, customerRepo, memoryRepo,
		holdStore, txRepo, logger, cfg.Tax.BaseRate)
	pos.NewHandler(posService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	logger.Info("POS API server starting",
		zap.String("port", cfg.Server.Port),
		zap.String("terminal", cfg.Server.TerminalID),
		zap.Float64("tax_rate", cfg.Tax.BaseRate))
	if err := http.ListenAndServe(":"+cfg.Server.Port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
