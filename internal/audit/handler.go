package audit

import (
	"fmt"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AuditLogResponse struct {
	ID           uint               `json:"id"`
	CreatedAt    string             `json:"created_at"`
	EmployeeID   uint               `json:"employee_id"`
	EmployeeName string             `json:"employee_name"`
	EntityType   string             `json:"entity_type"`
	EntityID     uint               `json:"entity_id"`
	Action       models.AuditAction `json:"action"`
	Description  string             `json:"description"`
}

// GET /api/audit-logs?entity_type=inventory_item&entity_id=1&employee_id=2
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.AuditLog{})

		if entityType := c.Query("entity_type"); entityType != "" {
			dbq = dbq.Where("entity_type = ?", entityType)
		}
		if entityIDStr := c.Query("entity_id"); entityIDStr != "" {
			var eid uint
			if _, err := fmt.Sscan(entityIDStr, &eid); err == nil && eid > 0 {
				dbq = dbq.Where("entity_id = ?", eid)
			}
		}
		if employeeIDStr := c.Query("employee_id"); employeeIDStr != "" {
			var eid uint
			if _, err := fmt.Sscan(employeeIDStr, &eid); err == nil && eid > 0 {
				dbq = dbq.Where("employee_id = ?", eid)
			}
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at DESC").Limit(500).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Audit logs could not be listed")
		}

		resp := make([]AuditLogResponse, 0, len(logs))
		for _, entry := range logs {
			resp = append(resp, AuditLogResponse{
				ID:           entry.ID,
				CreatedAt:    entry.CreatedAt.Format("2006-01-02 15:04:05"),
				EmployeeID:   entry.EmployeeID,
				EmployeeName: entry.EmployeeName,
				EntityType:   entry.EntityType,
				EntityID:     entry.EntityID,
				Action:       entry.Action,
				Description:  entry.Description,
			})
		}

		return c.JSON(fiber.Map{"success": true, "data": resp})
	}
}
