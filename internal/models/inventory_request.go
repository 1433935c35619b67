package models

import "time"

type InventoryRequestStatus string

const (
	RequestSubmitted InventoryRequestStatus = "submitted"
	RequestApproved  InventoryRequestStatus = "Approved"
)

// InventoryRequest: an employee's ask for stock. Approval performs the
// withdrawal and links the resulting WithdrawalLog.
type InventoryRequest struct {
	ID              uint `gorm:"primaryKey"`
	ItemID          uint `gorm:"index;not null"`
	Item            InventoryItem `gorm:"foreignKey:ItemID"`
	EmployeeID      uint          `gorm:"index;not null"`
	Employee        Employee      `gorm:"foreignKey:EmployeeID"`
	Quantity        float64       `gorm:"not null"`
	Reason          string        `gorm:"size:255"`
	Status          InventoryRequestStatus `gorm:"size:20;not null;default:'submitted'"`
	WithdrawalLogID *uint                  `gorm:"index"` // set on approval
	ApprovedBy      *uint
	ApprovedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
