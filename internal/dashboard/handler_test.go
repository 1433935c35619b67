package dashboard

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/inventory"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDashboardTest(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	database.DB = db
}

func seedDashboardItem(t *testing.T, name string, quantity, initial float64) {
	t.Helper()
	snap, err := inventory.ComputeSnapshot(quantity, initial)
	require.NoError(t, err)
	item := models.InventoryItem{
		Name:            name,
		Unit:            "kg",
		Quantity:        snap.Quantity,
		InitialQuantity: snap.InitialQuantity,
		PricePerUnit:    1,
		Status:          snap.Status,
	}
	require.NoError(t, database.DB.Create(&item).Error)
}

func TestOverviewLowStockUsesStrictThreshold(t *testing.T) {
	setupDashboardTest(t)
	seedDashboardItem(t, "Flour", 10, 100) // exactly at threshold, healthy
	seedDashboardItem(t, "Sugar", 9, 100)  // below, low

	app := fiber.New()
	app.Get("/dashboard", OverviewHandler())

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool              `json:"success"`
		Data    DashboardResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)

	assert.Equal(t, int64(2), body.Data.TotalItems)
	require.Len(t, body.Data.LowStockItems, 1)
	assert.Equal(t, "Sugar", body.Data.LowStockItems[0].Name)
}
