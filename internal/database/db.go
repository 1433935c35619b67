package database

import (
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/config"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/logger"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.L.Fatalf("database connection failed: %v", err)
	}

	if err := Migrate(DB); err != nil {
		logger.L.Fatalf("AutoMigrate failed: %v", err)
	}

	logger.L.Info("database connected, migration complete")
}

// Migrate runs AutoMigrate for every model. Shared with the test setup,
// which runs it against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Employee{},
		&models.Supplier{},
		&models.InventoryItem{},
		&models.StockBatch{},
		&models.SupplierOrder{},
		&models.InventoryPackage{},
		&models.PackageItem{},
		&models.WithdrawalLog{},
		&models.InventoryRequest{},
		&models.Purchase{},
		&models.Food{},
		&models.Order{},
		&models.OrderItem{},
		&models.Feedback{},
		&models.AuditLog{},
	)
}
