package models

import "time"

// Task is a unit of work assigned to exactly one employee.
// Status is free text; the forms offer the usual Pending / In Progress /
// Completed choices but any value the client sends is stored verbatim.
type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"not null;default:Pending"`
	DueDate     *time.Time
	EmployeeID  uint `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
