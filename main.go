package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/config"
	"github.com/ardiansyah/laundry-pos/middlewares"
	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/router"
	"github.com/ardiansyah/laundry-pos/utils"
)

func init() {
	// Load .env file di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	// Simpan koneksi database ke utils untuk digunakan di controller
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	settings := config.LoadSettings()
	utils.InfoLogger.Printf("Starting %s (currency %s)", settings.BusinessName, settings.CurrencySymbol)

	// Bersihkan token blacklist yang kadaluarsa tiap jam
	go func() {
		for range time.Tick(time.Hour) {
			utils.CleanupBlacklist()
		}
	}()

	// Rate limiter global (50 request per detik per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db)
	r.Use(rateLimiter.RateLimit())

	_ = r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Role{},
		&models.NavigationItem{},
		&models.User{},
		&models.Customer{},
		&models.ProductCategory{},
		&models.ProductType{},
		&models.ServiceAction{},
		&models.ServiceOffering{},
		&models.CustomerPrice{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.DiningTable{},
		&models.Reservation{},
		&models.ExpenseCategory{},
		&models.Expense{},
		&models.Supplier{},
		&models.InventoryItem{},
		&models.Purchase{},
		&models.PurchaseItem{},
		&models.Notification{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
