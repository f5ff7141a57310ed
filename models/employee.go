package models

import "time"

// Employee is a staff record. An employee owns zero or more tasks.
type Employee struct {
	ID         uint   `gorm:"primaryKey"`
	FullName   string `gorm:"not null"`
	Email      string `gorm:"not null"`
	Department string
	Role       string
	Location   string
	DateJoined time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Tasks []Task `gorm:"foreignKey:EmployeeID"`
}
