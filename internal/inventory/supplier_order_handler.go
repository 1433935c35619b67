package inventory

import (
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateSupplierOrderRequest struct {
	ItemID     uint    `json:"item_id"`
	SupplierID uint    `json:"supplier_id"`
	Quantity   float64 `json:"quantity"`
}

type SupplierOrderResponse struct {
	ID              uint                       `json:"id"`
	ItemID          uint                       `json:"item_id"`
	ItemName        string                     `json:"item_name"`
	SupplierID      uint                       `json:"supplier_id"`
	SupplierName    string                     `json:"supplier_name"`
	QuantityOrdered float64                    `json:"quantity_ordered"`
	Status          models.SupplierOrderStatus `json:"status"`
	PackageID       *uint                      `json:"package_id"`
	CreatedAt       string                     `json:"created_at"`
}

func supplierOrderResponse(o models.SupplierOrder) SupplierOrderResponse {
	return SupplierOrderResponse{
		ID:              o.ID,
		ItemID:          o.ItemID,
		ItemName:        o.Item.Name,
		SupplierID:      o.SupplierID,
		SupplierName:    o.Supplier.Name,
		QuantityOrdered: o.QuantityOrdered,
		Status:          o.Status,
		PackageID:       o.PackageID,
		CreatedAt:       o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/supplier-orders
// Manual replenishment order; the reorder trigger creates its own with
// status Sent, manual ones start Pending.
func CreateSupplierOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSupplierOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.ItemID == 0 || body.SupplierID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "item_id and supplier_id are required")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity must be greater than zero")
		}

		var item models.InventoryItem
		if err := database.DB.First(&item, body.ItemID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Item not found")
		}
		var supplier models.Supplier
		if err := database.DB.First(&supplier, body.SupplierID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Supplier not found")
		}

		order := models.SupplierOrder{
			ItemID:          body.ItemID,
			SupplierID:      body.SupplierID,
			QuantityOrdered: body.Quantity,
			Status:          models.SupplierOrderPending,
		}
		if err := database.DB.Create(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Order could not be created")
		}

		order.Item = item
		order.Supplier = supplier
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": supplierOrderResponse(order)})
	}
}

// GET /api/supplier-orders?status=Pending&supplier_id=2
func ListSupplierOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.SupplierOrder{}).Preload("Item").Preload("Supplier")

		if status := c.Query("status"); status != "" {
			dbq = dbq.Where("status = ?", status)
		}
		if supplierID := c.QueryInt("supplier_id"); supplierID > 0 {
			dbq = dbq.Where("supplier_id = ?", supplierID)
		}

		var orders []models.SupplierOrder
		if err := dbq.Order("created_at DESC").Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Orders could not be listed")
		}

		resp := make([]SupplierOrderResponse, 0, len(orders))
		for _, o := range orders {
			resp = append(resp, supplierOrderResponse(o))
		}
		return c.JSON(fiber.Map{"success": true, "data": resp})
	}
}

// DELETE /api/supplier-orders/:id
// Only unpackaged Pending orders can be cancelled.
func CancelSupplierOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var order models.SupplierOrder
		if err := database.DB.First(&order, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}

		if order.Status != models.SupplierOrderPending {
			return fiber.NewError(fiber.StatusBadRequest, "Only Pending orders can be cancelled")
		}
		if order.PackageID != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Order belongs to a package, remove it from the package first")
		}

		if err := database.DB.Delete(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Order could not be cancelled")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
