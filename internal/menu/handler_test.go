package menu

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMenuTest(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	database.DB = db
	return db
}

func seedFood(t *testing.T, db *gorm.DB, name string) models.Food {
	t.Helper()
	f := models.Food{Name: name, Price: 5, IsAvailable: true}
	require.NoError(t, db.Create(&f).Error)
	return f
}

func TestUpdateFoodRejectsDuplicateName(t *testing.T) {
	db := setupMenuTest(t)
	seedFood(t, db, "Espresso")
	latte := seedFood(t, db, "Latte")

	app := fiber.New()
	app.Put("/menu/:id", UpdateFoodHandler())

	req := httptest.NewRequest("PUT", fmt.Sprintf("/menu/%d", latte.ID),
		strings.NewReader(`{"name": "Espresso"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var got models.Food
	require.NoError(t, db.First(&got, latte.ID).Error)
	assert.Equal(t, "Latte", got.Name)
}

func TestUpdateFoodKeepingOwnNameAllowed(t *testing.T) {
	db := setupMenuTest(t)
	latte := seedFood(t, db, "Latte")

	app := fiber.New()
	app.Put("/menu/:id", UpdateFoodHandler())

	req := httptest.NewRequest("PUT", fmt.Sprintf("/menu/%d", latte.ID),
		strings.NewReader(`{"name": "Latte", "price": 6.5}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.Food
	require.NoError(t, db.First(&got, latte.ID).Error)
	assert.Equal(t, 6.5, got.Price)
}
