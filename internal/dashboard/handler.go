package dashboard

import (
	"time"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/inventory"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LowStockItem struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Quantity        float64 `json:"quantity"`
	InitialQuantity float64 `json:"initial_quantity"`
	Status          string  `json:"status"`
}

type DashboardResponse struct {
	TotalItems            int64          `json:"total_items"`
	LowStockItems         []LowStockItem `json:"low_stock_items"`
	PendingSupplierOrders int64          `json:"pending_supplier_orders"`
	PendingPackages       int64          `json:"pending_packages"`
	OpenRequests          int64          `json:"open_requests"`
	TodayOrders           int64          `json:"today_orders"`
	TodayRevenue          float64        `json:"today_revenue"`
	TodayWithdrawals      int64          `json:"today_withdrawals"`
	StockValue            float64        `json:"stock_value"`
}

// GET /api/dashboard (staff). A point-in-time overview for the back office:
// what is running low, what is on order, what moved today.
func OverviewHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var resp DashboardResponse

		database.DB.Model(&models.InventoryItem{}).Count(&resp.TotalItems)

		var items []models.InventoryItem
		if err := database.DB.Order("name ASC").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Inventory could not be loaded")
		}
		resp.LowStockItems = make([]LowStockItem, 0)
		for _, item := range items {
			if item.InitialQuantity <= 0 {
				continue
			}
			// same strict-below reading as the reorder trigger
			if item.Quantity/item.InitialQuantity*100 < inventory.ReorderThresholdPercent {
				resp.LowStockItems = append(resp.LowStockItems, LowStockItem{
					ID:              item.ID,
					Name:            item.Name,
					Quantity:        item.Quantity,
					InitialQuantity: item.InitialQuantity,
					Status:          item.Status,
				})
			}
			resp.StockValue += item.Quantity * item.PricePerUnit
		}

		database.DB.Model(&models.SupplierOrder{}).
			Where("status IN ?", []models.SupplierOrderStatus{models.SupplierOrderPending, models.SupplierOrderSent}).
			Count(&resp.PendingSupplierOrders)
		database.DB.Model(&models.InventoryPackage{}).
			Where("status = ?", models.PackagePending).
			Count(&resp.PendingPackages)
		database.DB.Model(&models.InventoryRequest{}).
			Where("status = ?", models.RequestSubmitted).
			Count(&resp.OpenRequests)

		today := time.Now().Truncate(24 * time.Hour)
		tomorrow := today.AddDate(0, 0, 1)

		database.DB.Model(&models.Order{}).
			Where("created_at >= ? AND created_at < ?", today, tomorrow).
			Count(&resp.TodayOrders)
		database.DB.Model(&models.Order{}).
			Where("created_at >= ? AND created_at < ? AND status <> ?", today, tomorrow, models.OrderCancelled).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&resp.TodayRevenue)
		database.DB.Model(&models.WithdrawalLog{}).
			Where("created_at >= ? AND created_at < ?", today, tomorrow).
			Count(&resp.TodayWithdrawals)

		return c.JSON(fiber.Map{"success": true, "data": resp})
	}
}
