package models

import "time"

// WithdrawalLog: immutable audit record of a stock withdrawal. Never
// updated or deleted.
type WithdrawalLog struct {
	ID         uint `gorm:"primaryKey"`
	ItemID     uint `gorm:"index;not null"`
	Item       InventoryItem `gorm:"foreignKey:ItemID"`
	Quantity   float64       `gorm:"not null"`
	Reason     string        `gorm:"size:255"`
	EmployeeID uint          `gorm:"index;not null"`
	Employee   Employee      `gorm:"foreignKey:EmployeeID"`
	CreatedAt  time.Time
}
