package models

import (
	"time"
)

// Document belongs to exactly one of Employee or Trucker. The parent
// reference is set at creation and never re-pointed.
type Document struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	DocumentType     string     `json:"document_type" gorm:"not null"`
	FilePath         string     `json:"file_path" gorm:"not null"`
	UploadDate       time.Time  `json:"upload_date"`
	IsVerified       bool       `json:"is_verified" gorm:"not null;default:false"`
	VerificationDate *time.Time `json:"verification_date"`
	VerifiedBy       *string    `json:"verified_by"`
	EmployeeID       *uint      `json:"employee_id"`
	TruckerID        *uint      `json:"trucker_id"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
