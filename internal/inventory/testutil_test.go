package inventory

import (
	"fmt"
	"testing"
	"time"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// in-memory sqlite: one connection, or every pooled connection gets
	// its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

var seedSeq int

func seedSupplier(t *testing.T, db *gorm.DB) models.Supplier {
	t.Helper()
	seedSeq++
	s := models.Supplier{Name: fmt.Sprintf("Supplier %d", seedSeq)}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func seedEmployee(t *testing.T, db *gorm.DB) models.Employee {
	t.Helper()
	seedSeq++
	e := models.Employee{
		Name:         fmt.Sprintf("Employee %d", seedSeq),
		Email:        fmt.Sprintf("employee%d@test.local", seedSeq),
		PasswordHash: "x",
		Role:         models.RoleInventoryManager,
	}
	require.NoError(t, db.Create(&e).Error)
	return e
}

func seedItem(t *testing.T, db *gorm.DB, quantity, initial float64, supplierID *uint) models.InventoryItem {
	t.Helper()
	seedSeq++
	snap, err := ComputeSnapshot(quantity, initial)
	require.NoError(t, err)
	item := models.InventoryItem{
		Name:            fmt.Sprintf("Item %d", seedSeq),
		Unit:            "kg",
		Quantity:        snap.Quantity,
		InitialQuantity: snap.InitialQuantity,
		PricePerUnit:    10,
		Status:          snap.Status,
		SupplierID:      supplierID,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func seedBatch(t *testing.T, db *gorm.DB, itemID uint, remaining float64, purchaseDate time.Time) models.StockBatch {
	t.Helper()
	b := models.StockBatch{
		ItemID:            itemID,
		BatchNumber:       NewBatchNumber(),
		PurchaseDate:      purchaseDate,
		QuantityReceived:  remaining,
		QuantityRemaining: remaining,
		UnitPrice:         10,
	}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func day(n int) time.Time {
	return time.Date(2026, 1, n, 0, 0, 0, 0, time.UTC)
}
