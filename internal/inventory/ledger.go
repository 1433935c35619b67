package inventory

import (
	"errors"
	"time"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrItemNotFound = errors.New("inventory item not found")

// lockForUpdate takes a row lock on Postgres. SQLite (used by the tests)
// has no FOR UPDATE and is single-writer anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// Withdraw removes quantity from an item's batches following the given
// strategy. The allocation plan is computed first and applied only if fully
// satisfiable; plan application, item recompute and the withdrawal log all
// commit in one transaction. The reorder check runs after commit.
func Withdraw(db *gorm.DB, itemID uint, quantity float64, strategy AllocationStrategy, reason string, employeeID uint) (*models.WithdrawalLog, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var wlog models.WithdrawalLog
	err := db.Transaction(func(tx *gorm.DB) error {
		var item models.InventoryItem
		if err := lockForUpdate(tx).First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		var batches []models.StockBatch
		if err := tx.
			Where("item_id = ? AND quantity_remaining > 0", itemID).
			Find(&batches).Error; err != nil {
			return err
		}

		plan, err := PlanWithdrawal(batches, quantity, strategy)
		if err != nil {
			return err
		}

		available := 0.0
		for _, b := range batches {
			available += b.QuantityRemaining
		}

		for _, d := range plan {
			if err := tx.Model(&models.StockBatch{}).
				Where("id = ?", d.BatchID).
				Update("quantity_remaining", gorm.Expr("quantity_remaining - ?", d.Quantity)).Error; err != nil {
				return err
			}
		}

		// Quantity is defined as the sum of batch remainders, so derive the
		// new value from what the batches actually held.
		snap, err := ComputeSnapshot(available-quantity, item.InitialQuantity)
		if err != nil {
			return err
		}
		if err := tx.Model(&item).Updates(map[string]interface{}{
			"quantity": snap.Quantity,
			"status":   snap.Status,
		}).Error; err != nil {
			return err
		}

		wlog = models.WithdrawalLog{
			ItemID:     itemID,
			Quantity:   quantity,
			Reason:     reason,
			EmployeeID: employeeID,
		}
		return tx.Create(&wlog).Error
	})
	if err != nil {
		return nil, err
	}

	maybeReorder(db, itemID)

	return &wlog, nil
}

// AddStock creates a new batch for the item and recomputes the snapshot,
// ratcheting the initial-quantity high-water mark. A purchase row records
// the receipt. Everything commits in one transaction. The reorder check
// runs after commit: an addition too small to lift the item back above
// the threshold still raises a supplier order.
func AddStock(db *gorm.DB, itemID uint, quantity, unitPrice float64, purchaseDate time.Time, supplierID *uint, employeeID uint) (*models.StockBatch, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var batch models.StockBatch
	err := db.Transaction(func(tx *gorm.DB) error {
		var item models.InventoryItem
		if err := lockForUpdate(tx).First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		var expiry *time.Time
		if item.ExpiryDays > 0 {
			e := purchaseDate.AddDate(0, 0, item.ExpiryDays)
			expiry = &e
		}

		batch = models.StockBatch{
			ItemID:            itemID,
			BatchNumber:       NewBatchNumber(),
			PurchaseDate:      purchaseDate,
			QuantityReceived:  quantity,
			QuantityRemaining: quantity,
			ExpiryDate:        expiry,
			UnitPrice:         unitPrice,
		}
		if err := tx.Create(&batch).Error; err != nil {
			return err
		}

		newQty := item.Quantity + quantity
		initial := RatchetInitial(item.InitialQuantity, newQty)
		snap, err := ComputeSnapshot(newQty, initial)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"quantity":         snap.Quantity,
			"initial_quantity": snap.InitialQuantity,
			"status":           snap.Status,
		}
		if supplierID != nil {
			updates["supplier_id"] = *supplierID
		}
		if err := tx.Model(&item).Updates(updates).Error; err != nil {
			return err
		}

		purchase := models.Purchase{
			ItemID:     itemID,
			BatchID:    batch.ID,
			SupplierID: supplierID,
			Quantity:   quantity,
			UnitPrice:  unitPrice,
			TotalCost:  quantity * unitPrice,
			EmployeeID: employeeID,
		}
		return tx.Create(&purchase).Error
	})
	if err != nil {
		return nil, err
	}

	maybeReorder(db, itemID)

	return &batch, nil
}
