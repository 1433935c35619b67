package inventory

import (
	"strconv"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/logger"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"gorm.io/gorm"
)

// Below this percent-remaining an automatic supplier order is raised.
const ReorderThresholdPercent = 10

// ReorderDecision inspects the recomputed status and decides how much to
// order to bring the item back to its restock target. A non-numeric status
// is reported as an error (the caller no-ops and logs); a quantity already
// at or above the target is a contradiction that can follow a just-lowered
// target and is treated as "nothing to order".
func ReorderDecision(status string, quantity, initialQuantity float64) (float64, bool, error) {
	pct, err := strconv.Atoi(status)
	if err != nil {
		return 0, false, err
	}
	if pct >= ReorderThresholdPercent {
		return 0, false, nil
	}
	toOrder := initialQuantity - quantity
	if toOrder <= 0 {
		return 0, false, nil
	}
	return toOrder, true, nil
}

// maybeReorder runs after a ledger mutation commits, withdrawals and
// additions alike. Fire-and-forget: any failure is logged and never
// propagated to the caller's operation.
func maybeReorder(db *gorm.DB, itemID uint) {
	var item models.InventoryItem
	if err := db.First(&item, itemID).Error; err != nil {
		logger.L.Warnw("reorder check skipped, item not loadable", "item_id", itemID, "error", err)
		return
	}

	toOrder, ok, err := ReorderDecision(item.Status, item.Quantity, item.InitialQuantity)
	if err != nil {
		logger.L.Warnw("reorder check skipped, status not numeric", "item_id", item.ID, "status", item.Status)
		return
	}
	if !ok {
		return
	}

	if item.SupplierID == nil {
		logger.L.Warnw("reorder skipped, item has no supplier", "item_id", item.ID, "item", item.Name)
		return
	}

	order := models.SupplierOrder{
		ItemID:          item.ID,
		SupplierID:      *item.SupplierID,
		QuantityOrdered: toOrder,
		Status:          models.SupplierOrderSent,
	}
	if err := db.Create(&order).Error; err != nil {
		logger.L.Errorw("reorder supplier order could not be created", "item_id", item.ID, "error", err)
		return
	}

	logger.L.Infow("reorder triggered",
		"item_id", item.ID, "item", item.Name,
		"status_percent", item.Status, "quantity_ordered", toOrder,
		"supplier_order_id", order.ID)
}
