package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mohamedabdelbaset2026-cyber/POS/config"
	"github.com/mohamedabdelbaset2026-cyber/POS/database"
	"github.com/mohamedabdelbaset2026-cyber/POS/events"
	"github.com/mohamedabdelbaset2026-cyber/POS/middlewares"
	"github.com/mohamedabdelbaset2026-cyber/POS/models"
	"github.com/mohamedabdelbaset2026-cyber/POS/router"
	"github.com/mohamedabdelbaset2026-cyber/POS/services"
	"github.com/mohamedabdelbaset2026-cyber/POS/utils"
	"gorm.io/gorm"
)

func init() {
	// Load .env before anything else
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.LoadConfig()

	// Settings store: the only persisted state is the AI credential key.
	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open settings store: %v", err)
	}
	autoMigrate(db)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// In-memory stores; everything here vanishes on restart by design.
	hub := events.NewHub()
	catalog := services.NewCatalog()
	customers := services.NewCustomerDirectory()
	ledger := services.NewSalesLedger()
	pricing := services.NewPricing(cfg.TaxRate)
	session := services.NewOrderSession(pricing, ledger, hub)

	database.Seed(catalog, customers)

	settings := services.NewSettingsService(db)
	chef := services.NewChefService(settings)

	// Global rate limiter (50 requests per second per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(router.Deps{
		Catalog:   catalog,
		Customers: customers,
		Session:   session,
		Ledger:    ledger,
		Settings:  settings,
		Chef:      chef,
		Hub:       hub,
	})
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
