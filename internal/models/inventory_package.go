package models

import "time"

type PackageType string

const (
	PackageTypeOrder   PackageType = "Order"   // supplier replenishment
	PackageTypeRequest PackageType = "Request" // employee-initiated
)

type PackageStatus string

const (
	PackagePending PackageStatus = "Pending"
	PackageDone    PackageStatus = "done"
)

// InventoryPackage groups supplier orders from one supplier into a single
// shippable unit. Receiving the package fans out into new stock batches for
// every line item.
type InventoryPackage struct {
	ID         uint        `gorm:"primaryKey"`
	Type       PackageType `gorm:"size:20;not null"`
	SupplierID *uint       `gorm:"index"` // required for Type=Order
	Supplier   *Supplier
	EmployeeID *uint `gorm:"index"` // required for Type=Request
	Employee   *Employee
	TotalCost  float64       `gorm:"not null"`
	Status     PackageStatus `gorm:"size:20;not null;default:'Pending'"`
	ReceivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []PackageItem `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
}

// PackageItem: cost-annotated snapshot of one supplier order inside a
// package. Keyed by the originating order id, so two orders for the same
// inventory item never collide on removal.
type PackageItem struct {
	ID              uint `gorm:"primaryKey"`
	PackageID       uint `gorm:"index;not null"`
	SupplierOrderID uint `gorm:"uniqueIndex;not null"`
	ItemID          uint `gorm:"index;not null"`
	ItemName        string  `gorm:"size:100;not null"` // denormalized for receipts
	Quantity        float64 `gorm:"not null"`
	Cost            float64 `gorm:"not null"` // quantity * item price at add time
	CreatedAt       time.Time
}
