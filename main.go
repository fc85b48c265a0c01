package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/LaryssaDev/site-para-gueto-fya/config"
	"github.com/LaryssaDev/site-para-gueto-fya/routes"
	"github.com/LaryssaDev/site-para-gueto-fya/store"
	"github.com/LaryssaDev/site-para-gueto-fya/store/slotdb"
)

func main() {
	log.Println("✅ Starting Gueto Fya storefront...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	// Snapshot slots: database-backed when configured, in-memory otherwise
	kv := initSlotStore(cfg)

	// Shop state (catalog, cart, orders)
	s := store.New(kv)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, s, cfg)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initSlotStore connects the snapshot slots to Postgres when a database
// is configured. Without one, snapshots live in memory and the shop
// starts from the bundled catalog on every boot.
func initSlotStore(cfg config.Config) store.KV {
	dsn := cfg.DatabaseURL
	if dsn == "" && cfg.DBHost != "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
	}
	if dsn == "" {
		log.Println("⚠️ No database configured, snapshots will not survive a restart")
		return store.NewMemoryKV()
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}

	kv, err := slotdb.New(db)
	if err != nil {
		log.Fatalf("❌ Slot table migration failed: %v", err)
	}
	return kv
}
