package models

import "time"

// StockBatch: one received lot of an inventory item. QuantityRemaining only
// ever decreases; exhausted batches (remaining = 0) are filtered out of read
// paths but never deleted, so the withdrawal history stays auditable.
type StockBatch struct {
	ID                uint   `gorm:"primaryKey"`
	ItemID            uint   `gorm:"index;not null"`
	Item              InventoryItem `gorm:"foreignKey:ItemID"`
	BatchNumber       string `gorm:"size:30;uniqueIndex;not null"`
	PurchaseDate      time.Time `gorm:"index;not null"`
	QuantityReceived  float64   `gorm:"not null"`
	QuantityRemaining float64   `gorm:"not null"`
	ExpiryDate        *time.Time
	UnitPrice         float64 `gorm:"not null"` // price at time of purchase
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
