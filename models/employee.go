package models

import (
	"time"
)

type Employee struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	FirstName        string     `json:"first_name" gorm:"not null"`
	LastName         string     `json:"last_name" gorm:"not null"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null"`
	PhoneNumber      string     `json:"phone_number"`
	Position         string     `json:"position"`
	IsActive         bool       `json:"is_active" gorm:"not null;default:true"`
	RegistrationDate time.Time  `json:"registration_date"`
	Documents        []Document `json:"documents,omitempty" gorm:"foreignKey:EmployeeID"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
