package inventory

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/audit"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AddStockRequest struct {
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	PurchaseDate string  `json:"purchase_date"` // "2026-01-15", defaults to today
	SupplierID   *uint   `json:"supplier_id"`
}

type WithdrawRequest struct {
	Quantity float64 `json:"quantity"`
	Strategy string  `json:"strategy"` // "fifo" (default) or "lifo"
	Reason   string  `json:"reason"`
}

type BatchResponse struct {
	ID                uint    `json:"id"`
	BatchNumber       string  `json:"batch_number"`
	PurchaseDate      string  `json:"purchase_date"`
	QuantityReceived  float64 `json:"quantity_received"`
	QuantityRemaining float64 `json:"quantity_remaining"`
	ExpiryDate        *string `json:"expiry_date"`
	UnitPrice         float64 `json:"unit_price"`
}

func batchResponse(b models.StockBatch) BatchResponse {
	var expiry *string
	if b.ExpiryDate != nil {
		e := b.ExpiryDate.Format("2006-01-02")
		expiry = &e
	}
	return BatchResponse{
		ID:                b.ID,
		BatchNumber:       b.BatchNumber,
		PurchaseDate:      b.PurchaseDate.Format("2006-01-02"),
		QuantityReceived:  b.QuantityReceived,
		QuantityRemaining: b.QuantityRemaining,
		ExpiryDate:        expiry,
		UnitPrice:         b.UnitPrice,
	}
}

func parseItemID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid item id")
	}
	return uint(id), nil
}

// ledgerError maps engine errors to HTTP responses.
func ledgerError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidQuantity):
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be greater than zero")
	case errors.Is(err, ErrInsufficientStock):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrItemNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Item not found")
	default:
		return err
	}
}

// POST /api/inventory/:id/stock
func AddStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID, err := parseItemID(c)
		if err != nil {
			return err
		}

		var body AddStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity must be greater than zero")
		}
		if body.UnitPrice < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "unit_price cannot be negative")
		}

		purchaseDate := time.Now()
		if body.PurchaseDate != "" {
			d, err := time.Parse("2006-01-02", body.PurchaseDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "purchase_date must be 'YYYY-MM-DD'")
			}
			purchaseDate = d
		}

		if body.SupplierID != nil {
			var supplier models.Supplier
			if err := database.DB.First(&supplier, *body.SupplierID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Supplier not found")
			}
		}

		empID, empName, err := getEmployeeInfo(c)
		if err != nil {
			return err
		}

		batch, err := AddStock(database.DB, itemID, body.Quantity, body.UnitPrice, purchaseDate, body.SupplierID, empID)
		if err != nil {
			return ledgerError(err)
		}

		audit.WriteLog(audit.LogOptions{
			EmployeeID:   empID,
			EmployeeName: empName,
			EntityType:   "stock_batch",
			EntityID:     batch.ID,
			Action:       models.AuditActionCreate,
			Description:  fmt.Sprintf("Stock added: item %d, %.2f units, batch %s", itemID, body.Quantity, batch.BatchNumber),
			After:        batch,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": batchResponse(*batch)})
	}
}

// POST /api/inventory/:id/withdraw
func WithdrawStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID, err := parseItemID(c)
		if err != nil {
			return err
		}

		var body WithdrawRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		strategy, err := ParseStrategy(body.Strategy)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		empID, empName, err := getEmployeeInfo(c)
		if err != nil {
			return err
		}

		wlog, err := Withdraw(database.DB, itemID, body.Quantity, strategy, body.Reason, empID)
		if err != nil {
			return ledgerError(err)
		}

		audit.WriteLog(audit.LogOptions{
			EmployeeID:   empID,
			EmployeeName: empName,
			EntityType:   "withdrawal",
			EntityID:     wlog.ID,
			Action:       models.AuditActionCreate,
			Description:  fmt.Sprintf("Stock withdrawn: item %d, %.2f units (%s)", itemID, body.Quantity, strategy),
			After:        wlog,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{
			"withdrawal_id": wlog.ID,
			"item_id":       wlog.ItemID,
			"quantity":      wlog.Quantity,
			"reason":        wlog.Reason,
			"created_at":    wlog.CreatedAt.Format("2006-01-02 15:04:05"),
		}})
	}
}

// GET /api/inventory/:id/batches?include_exhausted=true
func ListBatchesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID, err := parseItemID(c)
		if err != nil {
			return err
		}

		dbq := database.DB.Where("item_id = ?", itemID)
		if c.Query("include_exhausted") != "true" {
			dbq = dbq.Where("quantity_remaining > 0")
		}

		var batches []models.StockBatch
		if err := dbq.Order("purchase_date asc, id asc").Find(&batches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Batches could not be listed")
		}

		resp := make([]BatchResponse, 0, len(batches))
		for _, b := range batches {
			resp = append(resp, batchResponse(b))
		}
		return c.JSON(fiber.Map{"success": true, "data": resp})
	}
}

// GET /api/withdrawals?item_id=3
func ListWithdrawalsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.WithdrawalLog{}).Preload("Item").Preload("Employee")
		if itemIDStr := c.Query("item_id"); itemIDStr != "" {
			var itemID uint
			if _, err := fmt.Sscan(itemIDStr, &itemID); err == nil && itemID > 0 {
				dbq = dbq.Where("item_id = ?", itemID)
			}
		}

		var logs []models.WithdrawalLog
		if err := dbq.Order("created_at DESC").Limit(500).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Withdrawals could not be listed")
		}

		type WithdrawalResponse struct {
			ID           uint    `json:"id"`
			ItemID       uint    `json:"item_id"`
			ItemName     string  `json:"item_name"`
			Quantity     float64 `json:"quantity"`
			Reason       string  `json:"reason"`
			EmployeeID   uint    `json:"employee_id"`
			EmployeeName string  `json:"employee_name"`
			CreatedAt    string  `json:"created_at"`
		}

		resp := make([]WithdrawalResponse, 0, len(logs))
		for _, l := range logs {
			resp = append(resp, WithdrawalResponse{
				ID:           l.ID,
				ItemID:       l.ItemID,
				ItemName:     l.Item.Name,
				Quantity:     l.Quantity,
				Reason:       l.Reason,
				EmployeeID:   l.EmployeeID,
				EmployeeName: l.Employee.Name,
				CreatedAt:    l.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(fiber.Map{"success": true, "data": resp})
	}
}
