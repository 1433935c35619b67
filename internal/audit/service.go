package audit

import (
	"encoding/json"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/logger"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"
)

type LogOptions struct {
	EmployeeID   uint
	EmployeeName string
	EntityType   string
	EntityID     uint
	Action       models.AuditAction
	Description  string
	Before       any
	After        any
}

// WriteLog records a mutation. Callers treat it as fire-and-forget; a
// failed audit write never fails the business operation.
func WriteLog(opts LogOptions) {
	// jsonb columns need the JSON null literal, not an empty string
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		EmployeeID:   opts.EmployeeID,
		EmployeeName: opts.EmployeeName,
		EntityType:   opts.EntityType,
		EntityID:     opts.EntityID,
		Action:       opts.Action,
		Description:  opts.Description,
		BeforeData:   beforeStr,
		AfterData:    afterStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		logger.L.Errorw("audit log write failed",
			"entity_type", opts.EntityType, "entity_id", opts.EntityID, "error", err)
	}
}
