package handlers

import (
	"errors"
	"net/http"
	"time"

	"fleet-compliance-api/config"
	"fleet-compliance-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateTruckerRequest struct {
	FirstName           string     `json:"first_name" binding:"required"`
	LastName            string     `json:"last_name" binding:"required"`
	Email               *string    `json:"email" binding:"omitempty,email"`
	PhoneNumber         string     `json:"phone_number"`
	DriverLicenseNumber string     `json:"driver_license_number" binding:"required"`
	ProvinceOfIssue     string     `json:"province_of_issue" binding:"required"`
	TruckIDNumber       *string    `json:"truck_id_number"`
	CompanyName         *string    `json:"company_name"`
	RegistrationDate    *time.Time `json:"registration_date"`
}

// UpdateTruckerRequest is a patch: nil fields are left untouched. Email,
// truck ID and company stay optional on the record itself, so a patch can
// set them but not clear them back to null.
type UpdateTruckerRequest struct {
	FirstName           *string `json:"first_name"`
	LastName            *string `json:"last_name"`
	Email               *string `json:"email" binding:"omitempty,email"`
	PhoneNumber         *string `json:"phone_number"`
	DriverLicenseNumber *string `json:"driver_license_number"`
	ProvinceOfIssue     *string `json:"province_of_issue"`
	TruckIDNumber       *string `json:"truck_id_number"`
	CompanyName         *string `json:"company_name"`
	IsActive            *bool   `json:"is_active"`
}

// CreateTrucker adds a new trucker record — admin only
func CreateTrucker(c *gin.Context) {
	var req CreateTruckerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Trucker
	if req.Email != nil {
		if err := config.DB.Where("email = ?", *req.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Trucker with this email already exists"})
			return
		}
	}
	if err := config.DB.Where("driver_license_number = ?", req.DriverLicenseNumber).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Trucker with this driver license number already exists"})
		return
	}
	if req.TruckIDNumber != nil {
		if err := config.DB.Where("truck_id_number = ?", *req.TruckIDNumber).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Trucker with this truck ID number already exists"})
			return
		}
	}

	registered := today()
	if req.RegistrationDate != nil {
		registered = *req.RegistrationDate
	}
	trucker := models.Trucker{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		PhoneNumber:         req.PhoneNumber,
		DriverLicenseNumber: req.DriverLicenseNumber,
		ProvinceOfIssue:     req.ProvinceOfIssue,
		TruckIDNumber:       req.TruckIDNumber,
		CompanyName:         req.CompanyName,
		IsActive:            true,
		RegistrationDate:    registered,
	}
	if err := config.DB.Create(&trucker).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Trucker with this email, license or truck ID already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trucker"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Trucker created", "trucker": trucker})
}

// ListTruckers returns active truckers, paginated
func ListTruckers(c *gin.Context) {
	offset, limit := pagination(c)
	var truckers []models.Trucker
	config.DB.Where("is_active = ?", true).Order("id").Offset(offset).Limit(limit).Find(&truckers)
	c.JSON(http.StatusOK, gin.H{"count": len(truckers), "truckers": truckers})
}

// GetTrucker returns one trucker with their documents
func GetTrucker(c *gin.Context) {
	var trucker models.Trucker
	if err := config.DB.Preload("Documents").First(&trucker, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trucker not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trucker": trucker})
}

// UpdateTrucker applies a partial update — admin only
func UpdateTrucker(c *gin.Context) {
	var trucker models.Trucker
	if err := config.DB.First(&trucker, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trucker not found"})
		return
	}

	var req UpdateTruckerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var other models.Trucker
	if req.Email != nil {
		if err := config.DB.Where("email = ? AND id <> ?", *req.Email, trucker.ID).First(&other).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Trucker with this email already exists"})
			return
		}
		trucker.Email = req.Email
	}
	if req.DriverLicenseNumber != nil {
		if err := config.DB.Where("driver_license_number = ? AND id <> ?", *req.DriverLicenseNumber, trucker.ID).First(&other).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Trucker with this driver license number already exists"})
			return
		}
		trucker.DriverLicenseNumber = *req.DriverLicenseNumber
	}
	if req.TruckIDNumber != nil {
		if err := config.DB.Where("truck_id_number = ? AND id <> ?", *req.TruckIDNumber, trucker.ID).First(&other).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Trucker with this truck ID number already exists"})
			return
		}
		trucker.TruckIDNumber = req.TruckIDNumber
	}
	if req.FirstName != nil {
		trucker.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		trucker.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		trucker.PhoneNumber = *req.PhoneNumber
	}
	if req.ProvinceOfIssue != nil {
		trucker.ProvinceOfIssue = *req.ProvinceOfIssue
	}
	if req.CompanyName != nil {
		trucker.CompanyName = req.CompanyName
	}
	if req.IsActive != nil {
		trucker.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&trucker).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Trucker with this email, license or truck ID already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trucker"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trucker updated", "trucker": trucker})
}

// ArchiveTrucker snapshots the trucker into the archive and removes the live
// row, as one transaction — admin only
func ArchiveTrucker(c *gin.Context) {
	var trucker models.Trucker
	if err := config.DB.First(&trucker, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trucker not found"})
		return
	}

	archived := models.ArchivedTrucker{
		OriginalID:          trucker.ID,
		FirstName:           trucker.FirstName,
		LastName:            trucker.LastName,
		Email:               trucker.Email,
		PhoneNumber:         trucker.PhoneNumber,
		DriverLicenseNumber: trucker.DriverLicenseNumber,
		ProvinceOfIssue:     trucker.ProvinceOfIssue,
		TruckIDNumber:       trucker.TruckIDNumber,
		CompanyName:         trucker.CompanyName,
		IsActive:            false,
		RegistrationDate:    trucker.RegistrationDate,
		ArchiveDate:         today(),
		ArchivedReason:      archiveReason(c),
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&archived).Error; err != nil {
			return err
		}
		return tx.Delete(&trucker).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive trucker"})
		return
	}
	c.Status(http.StatusNoContent)
}
