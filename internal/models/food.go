package models

import "time"

// Food: a menu item shown to customers.
type Food struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null;unique"`
	Description string  `gorm:"size:500"`
	Category    string  `gorm:"size:50;index"` // breakfast, lunch, drinks...
	Price       float64 `gorm:"not null"`
	IsAvailable bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
