package models

import (
	"time"
)

// Archived rows are immutable snapshots taken the moment a live record is
// deactivated. OriginalID is a back-reference to the pre-archival identity,
// not a foreign key — the live row is gone by the time the snapshot exists.
// None of the archived tables carry unique indexes, so archiving frees an
// email / license / truck ID for reuse by a new live record.

type ArchivedEmployee struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	OriginalID       uint      `json:"original_id" gorm:"index;not null"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phone_number"`
	Position         string    `json:"position"`
	IsActive         bool      `json:"is_active"`
	RegistrationDate time.Time `json:"registration_date"`
	ArchiveDate      time.Time `json:"archive_date" gorm:"not null"`
	ArchivedReason   string    `json:"archived_reason"`
}

type ArchivedTrucker struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	OriginalID          uint      `json:"original_id" gorm:"index;not null"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Email               *string   `json:"email"`
	PhoneNumber         string    `json:"phone_number"`
	DriverLicenseNumber string    `json:"driver_license_number"`
	ProvinceOfIssue     string    `json:"province_of_issue"`
	TruckIDNumber       *string   `json:"truck_id_number"`
	CompanyName         *string   `json:"company_name"`
	IsActive            bool      `json:"is_active"`
	RegistrationDate    time.Time `json:"registration_date"`
	ArchiveDate         time.Time `json:"archive_date" gorm:"not null"`
	ArchivedReason      string    `json:"archived_reason"`
}

type ArchivedDocument struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	OriginalID       uint       `json:"original_id" gorm:"index;not null"`
	DocumentType     string     `json:"document_type"`
	FilePath         string     `json:"file_path"`
	UploadDate       time.Time  `json:"upload_date"`
	IsVerified       bool       `json:"is_verified"`
	VerificationDate *time.Time `json:"verification_date"`
	VerifiedBy       *string    `json:"verified_by"`
	EmployeeID       *uint      `json:"employee_id"`
	TruckerID        *uint      `json:"trucker_id"`
	ArchiveDate      time.Time  `json:"archive_date" gorm:"not null"`
	ArchivedReason   string     `json:"archived_reason"`
}
