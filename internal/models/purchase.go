package models

import "time"

// Purchase: receipt-time record of stock entering the ledger, one row per
// batch created.
type Purchase struct {
	ID         uint `gorm:"primaryKey"`
	ItemID     uint `gorm:"index;not null"`
	Item       InventoryItem `gorm:"foreignKey:ItemID"`
	BatchID    uint          `gorm:"index;not null"`
	Batch      StockBatch    `gorm:"foreignKey:BatchID"`
	SupplierID *uint         `gorm:"index"`
	Quantity   float64       `gorm:"not null"`
	UnitPrice  float64       `gorm:"not null"`
	TotalCost  float64       `gorm:"not null"`
	EmployeeID uint          `gorm:"index;not null"`
	CreatedAt  time.Time
}
