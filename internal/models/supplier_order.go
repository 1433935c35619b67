package models

import "time"

type SupplierOrderStatus string

const (
	SupplierOrderPending SupplierOrderStatus = "Pending"
	SupplierOrderSent    SupplierOrderStatus = "Sent"
	SupplierOrderDone    SupplierOrderStatus = "done"
)

// SupplierOrder: a replenishment request, created automatically by the
// reorder trigger or manually. PackageID links the order to at most one
// package; it is cleared when the order is removed from the package.
type SupplierOrder struct {
	ID              uint `gorm:"primaryKey"`
	ItemID          uint `gorm:"index;not null"`
	Item            InventoryItem `gorm:"foreignKey:ItemID"`
	SupplierID      uint          `gorm:"index;not null"`
	Supplier        Supplier      `gorm:"foreignKey:SupplierID"`
	QuantityOrdered float64       `gorm:"not null"`
	Status          SupplierOrderStatus `gorm:"size:20;not null;default:'Pending'"`
	PackageID       *uint               `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
