package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPackageNotFound        = errors.New("package not found")
	ErrOrderNotFound          = errors.New("supplier order not found")
	ErrOrderAlreadyPackaged   = errors.New("order already belongs to another package")
	ErrSupplierMismatch       = errors.New("order supplier does not match package supplier")
	ErrPackageAlreadyReceived = errors.New("package already received")
	ErrPackageNotOrderType    = errors.New("only Order packages accept supplier orders")
)

// CreatePackage validates the type-specific reference before creating
// anything: Order packages need an existing supplier, Request packages an
// existing requesting employee.
func CreatePackage(db *gorm.DB, pkgType models.PackageType, supplierID, employeeID *uint) (*models.InventoryPackage, error) {
	pkg := models.InventoryPackage{
		Type:   pkgType,
		Status: models.PackagePending,
	}

	switch pkgType {
	case models.PackageTypeOrder:
		if supplierID == nil {
			return nil, fmt.Errorf("supplier_id is required for Order packages")
		}
		var supplier models.Supplier
		if err := db.First(&supplier, *supplierID).Error; err != nil {
			return nil, fmt.Errorf("supplier %d not found", *supplierID)
		}
		pkg.SupplierID = supplierID
	case models.PackageTypeRequest:
		if employeeID == nil {
			return nil, fmt.Errorf("employee_id is required for Request packages")
		}
		var emp models.Employee
		if err := db.First(&emp, *employeeID).Error; err != nil {
			return nil, fmt.Errorf("employee %d not found", *employeeID)
		}
		pkg.EmployeeID = employeeID
	default:
		return nil, fmt.Errorf("package type must be %q or %q", models.PackageTypeOrder, models.PackageTypeRequest)
	}

	if err := db.Create(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// AddOrderToPackage appends a cost-annotated snapshot of the order to the
// package and marks the order Sent. Adding the same order to the same
// package twice is a no-op; adding it to a second package is rejected.
func AddOrderToPackage(db *gorm.DB, packageID, orderID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var pkg models.InventoryPackage
		if err := tx.First(&pkg, packageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPackageNotFound
			}
			return err
		}
		if pkg.Status != models.PackagePending {
			return ErrPackageAlreadyReceived
		}
		if pkg.Type != models.PackageTypeOrder || pkg.SupplierID == nil {
			return ErrPackageNotOrderType
		}

		var order models.SupplierOrder
		if err := tx.Preload("Item").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if order.PackageID != nil {
			if *order.PackageID == packageID {
				return nil // already in this package
			}
			return ErrOrderAlreadyPackaged
		}
		if order.SupplierID != *pkg.SupplierID {
			return ErrSupplierMismatch
		}

		cost := order.QuantityOrdered * order.Item.PricePerUnit
		item := models.PackageItem{
			PackageID:       pkg.ID,
			SupplierOrderID: order.ID,
			ItemID:          order.ItemID,
			ItemName:        order.Item.Name,
			Quantity:        order.QuantityOrdered,
			Cost:            cost,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		if err := tx.Model(&pkg).
			Update("total_cost", gorm.Expr("total_cost + ?", cost)).Error; err != nil {
			return err
		}

		return tx.Model(&order).Updates(map[string]interface{}{
			"package_id": pkg.ID,
			"status":     models.SupplierOrderSent,
		}).Error
	})
}

// RemoveOrderFromPackage is the exact inverse of AddOrderToPackage: the
// order's package link is cleared, its status reset to Pending, its cost
// subtracted, and only its own line item removed (line items are keyed by
// order id, so two orders for the same inventory item never collide).
// Removing an order that is not in the package is a no-op.
func RemoveOrderFromPackage(db *gorm.DB, packageID, orderID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var pkg models.InventoryPackage
		if err := tx.First(&pkg, packageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPackageNotFound
			}
			return err
		}
		if pkg.Status != models.PackagePending {
			return ErrPackageAlreadyReceived
		}

		var order models.SupplierOrder
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.PackageID == nil || *order.PackageID != packageID {
			return nil // not in this package
		}

		var item models.PackageItem
		if err := tx.
			Where("package_id = ? AND supplier_order_id = ?", packageID, orderID).
			First(&item).Error; err != nil {
			return err
		}

		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		if err := tx.Model(&pkg).
			Update("total_cost", gorm.Expr("total_cost - ?", item.Cost)).Error; err != nil {
			return err
		}

		return tx.Model(&order).Updates(map[string]interface{}{
			"package_id": nil,
			"status":     models.SupplierOrderPending,
		}).Error
	})
}

// ReceivePackage stocks every line item of the package: a new batch per
// line, quantity and high-water mark updated, a purchase row recorded and
// the snapshot recomputed. The whole fan-out is one transaction, so a
// failure mid-loop leaves nothing half-stocked. On success the package and
// all its orders flip to done, and the reorder check runs for every
// stocked item.
func ReceivePackage(db *gorm.DB, packageID, employeeID uint) error {
	var stockedItems []uint
	err := db.Transaction(func(tx *gorm.DB) error {
		var pkg models.InventoryPackage
		if err := tx.Preload("Items").First(&pkg, packageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPackageNotFound
			}
			return err
		}
		if pkg.Status != models.PackagePending {
			return ErrPackageAlreadyReceived
		}

		now := time.Now()
		for _, line := range pkg.Items {
			var item models.InventoryItem
			if err := lockForUpdate(tx).First(&item, line.ItemID).Error; err != nil {
				return fmt.Errorf("line item %d: %w", line.ID, err)
			}

			unitPrice := item.PricePerUnit
			if line.Quantity > 0 {
				unitPrice = line.Cost / line.Quantity
			}

			var expiry *time.Time
			if item.ExpiryDays > 0 {
				e := now.AddDate(0, 0, item.ExpiryDays)
				expiry = &e
			}

			batch := models.StockBatch{
				ItemID:            item.ID,
				BatchNumber:       NewBatchNumber(),
				PurchaseDate:      now,
				QuantityReceived:  line.Quantity,
				QuantityRemaining: line.Quantity,
				ExpiryDate:        expiry,
				UnitPrice:         unitPrice,
			}
			if err := tx.Create(&batch).Error; err != nil {
				return err
			}

			newQty := item.Quantity + line.Quantity
			initial := RatchetInitial(item.InitialQuantity, newQty)
			snap, err := ComputeSnapshot(newQty, initial)
			if err != nil {
				return err
			}
			if err := tx.Model(&item).Updates(map[string]interface{}{
				"quantity":         snap.Quantity,
				"initial_quantity": snap.InitialQuantity,
				"status":           snap.Status,
			}).Error; err != nil {
				return err
			}

			purchase := models.Purchase{
				ItemID:     item.ID,
				BatchID:    batch.ID,
				SupplierID: pkg.SupplierID,
				Quantity:   line.Quantity,
				UnitPrice:  unitPrice,
				TotalCost:  line.Cost,
				EmployeeID: employeeID,
			}
			if err := tx.Create(&purchase).Error; err != nil {
				return err
			}

			stockedItems = append(stockedItems, item.ID)
		}

		if err := tx.Model(&models.SupplierOrder{}).
			Where("package_id = ?", pkg.ID).
			Update("status", models.SupplierOrderDone).Error; err != nil {
			return err
		}

		return tx.Model(&pkg).Updates(map[string]interface{}{
			"status":      models.PackageDone,
			"received_at": now,
		}).Error
	})
	if err != nil {
		return err
	}

	for _, itemID := range stockedItems {
		maybeReorder(db, itemID)
	}
	return nil
}
