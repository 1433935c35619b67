package inventory

import (
	"fmt"
	"time"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/inventory/export
// Exports the current stock position to an XLSX workbook.
func ExportInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.InventoryItem
		if err := database.DB.Order("name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Items could not be listed")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Inventory"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"ID", "Name", "Category", "Unit", "Quantity", "Initial Quantity", "Status %", "Price Per Unit", "Live Batches"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, item := range items {
			var liveBatches int64
			database.DB.Model(&models.StockBatch{}).
				Where("item_id = ? AND quantity_remaining > 0", item.ID).
				Count(&liveBatches)

			values := []interface{}{
				item.ID, item.Name, item.Category, item.Unit,
				item.Quantity, item.InitialQuantity, item.Status,
				item.PricePerUnit, liveBatches,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Workbook could not be generated")
		}

		filename := fmt.Sprintf("inventory-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		return c.Send(buf.Bytes())
	}
}
