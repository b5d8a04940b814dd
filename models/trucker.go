package models

import (
	"time"
)

// Trucker email, truck ID and company are optional; the unique indexes on the
// nullable columns allow any number of NULLs, so uniqueness only binds rows
// that actually carry a value.
type Trucker struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	FirstName           string     `json:"first_name" gorm:"not null"`
	LastName            string     `json:"last_name" gorm:"not null"`
	Email               *string    `json:"email" gorm:"uniqueIndex"`
	PhoneNumber         string     `json:"phone_number"`
	DriverLicenseNumber string     `json:"driver_license_number" gorm:"uniqueIndex;not null"`
	ProvinceOfIssue     string     `json:"province_of_issue"`
	TruckIDNumber       *string    `json:"truck_id_number" gorm:"uniqueIndex"`
	CompanyName         *string    `json:"company_name"`
	IsActive            bool       `json:"is_active" gorm:"not null;default:true"`
	RegistrationDate    time.Time  `json:"registration_date"`
	Documents           []Document `json:"documents,omitempty" gorm:"foreignKey:TruckerID"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (t *Trucker) FullName() string {
	return t.FirstName + " " + t.LastName
}
