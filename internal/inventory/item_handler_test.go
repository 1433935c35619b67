package inventory

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateItemRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	database.DB = db
	first := seedItem(t, db, 10, 10, nil)
	second := seedItem(t, db, 10, 10, nil)

	app := fiber.New()
	app.Put("/items/:id", UpdateItemHandler())

	body := fmt.Sprintf(`{"name": %q}`, first.Name)
	req := httptest.NewRequest("PUT", fmt.Sprintf("/items/%d", second.ID), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var got models.InventoryItem
	require.NoError(t, db.First(&got, second.ID).Error)
	assert.Equal(t, second.Name, got.Name)
}

func TestUpdateItemKeepingOwnNameAllowed(t *testing.T) {
	db := newTestDB(t)
	database.DB = db
	item := seedItem(t, db, 10, 10, nil)

	app := fiber.New()
	app.Put("/items/:id", UpdateItemHandler())

	body := fmt.Sprintf(`{"name": %q, "category": "dry goods"}`, item.Name)
	req := httptest.NewRequest("PUT", fmt.Sprintf("/items/%d", item.ID), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.InventoryItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, "dry goods", got.Category)
}
