package inventory

import (
	"fmt"
	"strings"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/audit"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/auth"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateItemRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"price_per_unit"`
	ExpiryDays   int     `json:"expiry_days"`
	SupplierID   *uint   `json:"supplier_id"`
}

type UpdateItemRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Unit         *string  `json:"unit"`
	PricePerUnit *float64 `json:"price_per_unit"`
	ExpiryDays   *int     `json:"expiry_days"`
	SupplierID   *uint    `json:"supplier_id"`
}

type ItemResponse struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Unit            string  `json:"unit"`
	Quantity        float64 `json:"quantity"`
	InitialQuantity float64 `json:"initial_quantity"`
	PricePerUnit    float64 `json:"price_per_unit"`
	Status          string  `json:"status"`
	ExpiryDays      int     `json:"expiry_days"`
	SupplierID      *uint   `json:"supplier_id"`
}

func itemResponse(i models.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:              i.ID,
		Name:            i.Name,
		Category:        i.Category,
		Unit:            i.Unit,
		Quantity:        i.Quantity,
		InitialQuantity: i.InitialQuantity,
		PricePerUnit:    i.PricePerUnit,
		Status:          i.Status,
		ExpiryDays:      i.ExpiryDays,
		SupplierID:      i.SupplierID,
	}
}

// getEmployeeInfo resolves the authenticated actor for audit fields.
func getEmployeeInfo(c *fiber.Ctx) (uint, string, error) {
	empID, err := auth.EmployeeID(c)
	if err != nil {
		return 0, "", err
	}
	var emp models.Employee
	if err := database.DB.First(&emp, empID).Error; err != nil {
		return 0, "", fiber.NewError(fiber.StatusInternalServerError, "Employee not found")
	}
	return empID, emp.Name, nil
}

// POST /api/inventory
func CreateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Unit = strings.TrimSpace(body.Unit)
		if body.Name == "" || body.Unit == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name and unit are required")
		}
		if body.PricePerUnit < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "price_per_unit cannot be negative")
		}

		var existing models.InventoryItem
		if err := database.DB.Where("name = ?", body.Name).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "An item with this name already exists")
		}

		if body.SupplierID != nil {
			var supplier models.Supplier
			if err := database.DB.First(&supplier, *body.SupplierID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Supplier not found (ID: %d)", *body.SupplierID))
			}
		}

		item := models.InventoryItem{
			Name:         body.Name,
			Category:     strings.TrimSpace(body.Category),
			Unit:         body.Unit,
			PricePerUnit: body.PricePerUnit,
			ExpiryDays:   body.ExpiryDays,
			SupplierID:   body.SupplierID,
		}
		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Item could not be created")
		}

		if empID, empName, err := getEmployeeInfo(c); err == nil {
			audit.WriteLog(audit.LogOptions{
				EmployeeID:   empID,
				EmployeeName: empName,
				EntityType:   "inventory_item",
				EntityID:     item.ID,
				Action:       models.AuditActionCreate,
				Description:  fmt.Sprintf("Inventory item created: %s", item.Name),
				After:        item,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": itemResponse(item)})
	}
}

// GET /api/inventory?category=dairy
func ListItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.InventoryItem{})
		if category := c.Query("category"); category != "" {
			dbq = dbq.Where("category = ?", category)
		}

		var items []models.InventoryItem
		if err := dbq.Order("name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Items could not be listed")
		}

		resp := make([]ItemResponse, 0, len(items))
		for _, i := range items {
			resp = append(resp, itemResponse(i))
		}
		return c.JSON(fiber.Map{"success": true, "data": resp})
	}
}

// GET /api/inventory/:id
func GetItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.InventoryItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Item not found")
		}

		// live batches only; exhausted ones stay in the table for audit
		var batches []models.StockBatch
		if err := database.DB.
			Where("item_id = ? AND quantity_remaining > 0", item.ID).
			Order("purchase_date asc, id asc").
			Find(&batches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Batches could not be loaded")
		}

		batchResp := make([]BatchResponse, 0, len(batches))
		for _, b := range batches {
			batchResp = append(batchResp, batchResponse(b))
		}

		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
			"item":    itemResponse(item),
			"batches": batchResp,
		}})
	}
}

// PUT /api/inventory/:id
func UpdateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.InventoryItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Item not found")
		}
		before := item

		var body UpdateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			if name != item.Name {
				var count int64
				database.DB.Model(&models.InventoryItem{}).
					Where("name = ? AND id <> ?", name, item.ID).Count(&count)
				if count > 0 {
					return fiber.NewError(fiber.StatusBadRequest, "An item with this name already exists")
				}
			}
			item.Name = name
		}
		if body.Category != nil {
			item.Category = strings.TrimSpace(*body.Category)
		}
		if body.Unit != nil {
			unit := strings.TrimSpace(*body.Unit)
			if unit == "" {
				return fiber.NewError(fiber.StatusBadRequest, "unit cannot be empty")
			}
			item.Unit = unit
		}
		if body.PricePerUnit != nil {
			if *body.PricePerUnit < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "price_per_unit cannot be negative")
			}
			item.PricePerUnit = *body.PricePerUnit
		}
		if body.ExpiryDays != nil {
			item.ExpiryDays = *body.ExpiryDays
		}
		if body.SupplierID != nil {
			var supplier models.Supplier
			if err := database.DB.First(&supplier, *body.SupplierID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Supplier not found")
			}
			item.SupplierID = body.SupplierID
		}

		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Item could not be updated")
		}

		if empID, empName, err := getEmployeeInfo(c); err == nil {
			audit.WriteLog(audit.LogOptions{
				EmployeeID:   empID,
				EmployeeName: empName,
				EntityType:   "inventory_item",
				EntityID:     item.ID,
				Action:       models.AuditActionUpdate,
				Description:  fmt.Sprintf("Inventory item updated: %s", item.Name),
				Before:       before,
				After:        item,
			})
		}

		return c.JSON(fiber.Map{"success": true, "data": itemResponse(item)})
	}
}

// DELETE /api/inventory/:id
func DeleteItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.InventoryItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Item not found")
		}

		var liveBatches int64
		database.DB.Model(&models.StockBatch{}).
			Where("item_id = ? AND quantity_remaining > 0", item.ID).
			Count(&liveBatches)
		if liveBatches > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Item still has stock on hand and cannot be deleted")
		}

		if err := database.DB.Delete(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Item could not be deleted")
		}

		if empID, empName, err := getEmployeeInfo(c); err == nil {
			audit.WriteLog(audit.LogOptions{
				EmployeeID:   empID,
				EmployeeName: empName,
				EntityType:   "inventory_item",
				EntityID:     item.ID,
				Action:       models.AuditActionDelete,
				Description:  fmt.Sprintf("Inventory item deleted: %s", item.Name),
				Before:       item,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
