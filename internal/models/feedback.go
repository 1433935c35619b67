package models

import "time"

type Feedback struct {
	ID           uint   `gorm:"primaryKey"`
	OrderID      *uint  `gorm:"index"`
	CustomerName string `gorm:"size:100"`
	Rating       int    `gorm:"not null"` // 1-5
	Comment      string `gorm:"size:1000"`
	CreatedAt    time.Time
}
