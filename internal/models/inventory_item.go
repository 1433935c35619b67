package models

import "time"

// InventoryItem: Quantity is the sum of QuantityRemaining over the item's
// batches; InitialQuantity is the highest quantity ever held and serves as
// the restock target. Status is the percent remaining, stored as a string.
// All three are recomputed together inside the same transaction as the
// batch mutation they depend on.
type InventoryItem struct {
	ID              uint    `gorm:"primaryKey"`
	Name            string  `gorm:"size:100;not null;unique"`
	Category        string  `gorm:"size:50;index"`
	Unit            string  `gorm:"size:20;not null"` // kg, pcs, liter...
	Quantity        float64 `gorm:"not null"`
	InitialQuantity float64 `gorm:"not null"`
	PricePerUnit    float64 `gorm:"not null"`
	Status          string  `gorm:"size:10"` // percent remaining, e.g. "85"
	ExpiryDays      int     // shelf life in days, used for batch expiry dates
	SupplierID      *uint   `gorm:"index"` // last known supplier, reorder target
	Supplier        *Supplier
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Batches []StockBatch `gorm:"foreignKey:ItemID"`
}
