package inventory

import (
	"errors"
	"strconv"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/auth"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateInventoryRequestRequest struct {
	ItemID   uint    `json:"item_id"`
	Quantity float64 `json:"quantity"`
	Reason   string  `json:"reason"`
}

type InventoryRequestResponse struct {
	ID              uint                          `json:"id"`
	ItemID          uint                          `json:"item_id"`
	ItemName        string                        `json:"item_name"`
	EmployeeID      uint                          `json:"employee_id"`
	EmployeeName    string                        `json:"employee_name"`
	Quantity        float64                       `json:"quantity"`
	Reason          string                        `json:"reason"`
	Status          models.InventoryRequestStatus `json:"status"`
	WithdrawalLogID *uint                         `json:"withdrawal_log_id"`
	CreatedAt       string                        `json:"created_at"`
}

func requestResponse(r models.InventoryRequest) InventoryRequestResponse {
	return InventoryRequestResponse{
		ID:              r.ID,
		ItemID:          r.ItemID,
		ItemName:        r.Item.Name,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.Employee.Name,
		Quantity:        r.Quantity,
		Reason:          r.Reason,
		Status:          r.Status,
		WithdrawalLogID: r.WithdrawalLogID,
		CreatedAt:       r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/inventory-requests
func CreateInventoryRequestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateInventoryRequestRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.ItemID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "item_id is required")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity must be greater than zero")
		}

		empID, err := auth.EmployeeID(c)
		if err != nil {
			return err
		}

		var item models.InventoryItem
		if err := database.DB.First(&item, body.ItemID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Item not found")
		}

		req := models.InventoryRequest{
			ItemID:     body.ItemID,
			EmployeeID: empID,
			Quantity:   body.Quantity,
			Reason:     body.Reason,
			Status:     models.RequestSubmitted,
		}
		if err := database.DB.Create(&req).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Request could not be created")
		}

		if err := database.DB.Preload("Item").Preload("Employee").First(&req, req.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Request could not be reloaded")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": requestResponse(req)})
	}
}

// GET /api/inventory-requests?status=submitted
func ListInventoryRequestsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.InventoryRequest{}).Preload("Item").Preload("Employee")
		if status := c.Query("status"); status != "" {
			dbq = dbq.Where("status = ?", status)
		}

		var requests []models.InventoryRequest
		if err := dbq.Order("created_at DESC").Find(&requests).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Requests could not be listed")
		}

		resp := make([]InventoryRequestResponse, 0, len(requests))
		for _, r := range requests {
			resp = append(resp, requestResponse(r))
		}
		return c.JSON(fiber.Map{"success": true, "data": resp})
	}
}

// POST /api/inventory-requests/:id/approve
// Approval performs a FIFO withdrawal on behalf of the requester and links
// the withdrawal log. Insufficient stock leaves the request submitted.
func ApproveInventoryRequestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil || id == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
		}

		approverID, err := auth.EmployeeID(c)
		if err != nil {
			return err
		}

		req, err := ApproveRequest(database.DB, uint(id), approverID)
		if err != nil {
			switch {
			case errors.Is(err, ErrRequestNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Request not found")
			case errors.Is(err, ErrRequestAlreadyApproved):
				return fiber.NewError(fiber.StatusBadRequest, "Request is already approved")
			default:
				return ledgerError(err)
			}
		}

		if err := database.DB.Preload("Item").Preload("Employee").First(req, req.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Request could not be reloaded")
		}
		return c.JSON(fiber.Map{"success": true, "data": requestResponse(*req)})
	}
}
