package models

import "time"

type OrderStatus string

const (
	OrderPreparing OrderStatus = "Preparing"
	OrderReady     OrderStatus = "Ready"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

// Order: a customer order. Payment is handled by an external gateway; only
// the amount is recorded here.
type Order struct {
	ID            uint        `gorm:"primaryKey"`
	OrderNumber   string      `gorm:"size:20;uniqueIndex;not null"`
	CustomerName  string      `gorm:"size:100"`
	CustomerPhone string      `gorm:"size:30"`
	TableNumber   *int
	Status        OrderStatus `gorm:"size:20;not null;default:'Preparing'"`
	Amount        float64     `gorm:"not null"`
	Note          string      `gorm:"size:255"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"index;not null"`
	FoodID    uint `gorm:"index;not null"`
	Food      Food `gorm:"foreignKey:FoodID"`
	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"` // menu price at order time
	CreatedAt time.Time
}
