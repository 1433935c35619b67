package models

import "time"

type EmployeeRole string

const (
	RoleAdmin            EmployeeRole = "admin"
	RoleChef             EmployeeRole = "chef"
	RoleWaiter           EmployeeRole = "waiter"
	RoleInventoryManager EmployeeRole = "inventory_manager"
)

type Employee struct {
	ID           uint         `gorm:"primaryKey"`
	Name         string       `gorm:"size:100;not null"`
	Email        string       `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string       `gorm:"size:255;not null"`
	Role         EmployeeRole `gorm:"size:30;not null"`
	Position     string       `gorm:"size:100"` // free-form title, e.g. "Head Chef"
	Phone        string       `gorm:"size:30"`
	Salary       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
