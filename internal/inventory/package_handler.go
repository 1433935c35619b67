package inventory

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/audit"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreatePackageRequest struct {
	Type       string `json:"type"` // "Order" or "Request"
	SupplierID *uint  `json:"supplier_id"`
	EmployeeID *uint  `json:"employee_id"`
}

type PackageOrderRequest struct {
	OrderID uint `json:"order_id"`
}

type PackageItemResponse struct {
	ID              uint    `json:"id"`
	SupplierOrderID uint    `json:"supplier_order_id"`
	ItemID          uint    `json:"item_id"`
	ItemName        string  `json:"item_name"`
	Quantity        float64 `json:"quantity"`
	Cost            float64 `json:"cost"`
}

type PackageResponse struct {
	ID         uint                  `json:"id"`
	Type       models.PackageType    `json:"type"`
	SupplierID *uint                 `json:"supplier_id"`
	EmployeeID *uint                 `json:"employee_id"`
	TotalCost  float64               `json:"total_cost"`
	Status     models.PackageStatus  `json:"status"`
	ReceivedAt *string               `json:"received_at"`
	Items      []PackageItemResponse `json:"items"`
	CreatedAt  string                `json:"created_at"`
}

func packageResponse(p models.InventoryPackage) PackageResponse {
	items := make([]PackageItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, PackageItemResponse{
			ID:              it.ID,
			SupplierOrderID: it.SupplierOrderID,
			ItemID:          it.ItemID,
			ItemName:        it.ItemName,
			Quantity:        it.Quantity,
			Cost:            it.Cost,
		})
	}
	var receivedAt *string
	if p.ReceivedAt != nil {
		r := p.ReceivedAt.Format("2006-01-02 15:04:05")
		receivedAt = &r
	}
	return PackageResponse{
		ID:         p.ID,
		Type:       p.Type,
		SupplierID: p.SupplierID,
		EmployeeID: p.EmployeeID,
		TotalCost:  p.TotalCost,
		Status:     p.Status,
		ReceivedAt: receivedAt,
		Items:      items,
		CreatedAt:  p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func parsePackageID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid package id")
	}
	return uint(id), nil
}

// packageError maps aggregator errors to HTTP responses.
func packageError(err error) error {
	switch {
	case errors.Is(err, ErrPackageNotFound), errors.Is(err, ErrOrderNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrOrderAlreadyPackaged),
		errors.Is(err, ErrSupplierMismatch),
		errors.Is(err, ErrPackageAlreadyReceived),
		errors.Is(err, ErrPackageNotOrderType):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}

// POST /api/packages
func CreatePackageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePackageRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		pkg, err := CreatePackage(database.DB, models.PackageType(body.Type), body.SupplierID, body.EmployeeID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": packageResponse(*pkg)})
	}
}

// GET /api/packages?status=Pending
func ListPackagesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.InventoryPackage{}).Preload("Items")
		if status := c.Query("status"); status != "" {
			dbq = dbq.Where("status = ?", status)
		}

		var pkgs []models.InventoryPackage
		if err := dbq.Order("created_at DESC").Find(&pkgs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Packages could not be listed")
		}

		resp := make([]PackageResponse, 0, len(pkgs))
		for _, p := range pkgs {
			resp = append(resp, packageResponse(p))
		}
		return c.JSON(fiber.Map{"success": true, "data": resp})
	}
}

// GET /api/packages/:id
func GetPackageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pkgID, err := parsePackageID(c)
		if err != nil {
			return err
		}

		var pkg models.InventoryPackage
		if err := database.DB.Preload("Items").First(&pkg, pkgID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Package not found")
		}
		return c.JSON(fiber.Map{"success": true, "data": packageResponse(pkg)})
	}
}

// POST /api/packages/:id/orders
func AddOrderToPackageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pkgID, err := parsePackageID(c)
		if err != nil {
			return err
		}

		var body PackageOrderRequest
		if err := c.BodyParser(&body); err != nil || body.OrderID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "order_id is required")
		}

		if err := AddOrderToPackage(database.DB, pkgID, body.OrderID); err != nil {
			return packageError(err)
		}

		var pkg models.InventoryPackage
		if err := database.DB.Preload("Items").First(&pkg, pkgID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Package could not be reloaded")
		}
		return c.JSON(fiber.Map{"success": true, "data": packageResponse(pkg)})
	}
}

// DELETE /api/packages/:id/orders/:orderId
func RemoveOrderFromPackageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pkgID, err := parsePackageID(c)
		if err != nil {
			return err
		}
		orderID, err := strconv.ParseUint(c.Params("orderId"), 10, 32)
		if err != nil || orderID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid order id")
		}

		if err := RemoveOrderFromPackage(database.DB, pkgID, uint(orderID)); err != nil {
			return packageError(err)
		}

		var pkg models.InventoryPackage
		if err := database.DB.Preload("Items").First(&pkg, pkgID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Package could not be reloaded")
		}
		return c.JSON(fiber.Map{"success": true, "data": packageResponse(pkg)})
	}
}

// POST /api/packages/:id/receive
func ReceivePackageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pkgID, err := parsePackageID(c)
		if err != nil {
			return err
		}

		empID, empName, err := getEmployeeInfo(c)
		if err != nil {
			return err
		}

		if err := ReceivePackage(database.DB, pkgID, empID); err != nil {
			return packageError(err)
		}

		var pkg models.InventoryPackage
		if err := database.DB.Preload("Items").First(&pkg, pkgID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Package could not be reloaded")
		}

		audit.WriteLog(audit.LogOptions{
			EmployeeID:   empID,
			EmployeeName: empName,
			EntityType:   "package",
			EntityID:     pkg.ID,
			Action:       models.AuditActionUpdate,
			Description:  fmt.Sprintf("Package received: %d line items, total %.2f", len(pkg.Items), pkg.TotalCost),
			After:        pkg,
		})

		return c.JSON(fiber.Map{"success": true, "data": packageResponse(pkg)})
	}
}
