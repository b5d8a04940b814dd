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

type CreateEmployeeRequest struct {
	FirstName        string     `json:"first_name" binding:"required"`
	LastName         string     `json:"last_name" binding:"required"`
	Email            string     `json:"email" binding:"required,email"`
	PhoneNumber      string     `json:"phone_number"`
	Position         string     `json:"position"`
	RegistrationDate *time.Time `json:"registration_date"`
}

// UpdateEmployeeRequest is a patch: nil fields are left untouched
type UpdateEmployeeRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
	Position    *string `json:"position"`
	IsActive    *bool   `json:"is_active"`
}

// CreateEmployee adds a new employee record — admin only
func CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Uniqueness binds live rows only; an email held by an archived
	// employee is free to reuse
	var existing models.Employee
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Employee with this email already exists"})
		return
	}

	registered := today()
	if req.RegistrationDate != nil {
		registered = *req.RegistrationDate
	}
	employee := models.Employee{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		Position:         req.Position,
		IsActive:         true,
		RegistrationDate: registered,
	}
	if err := config.DB.Create(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Employee with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Employee created", "employee": employee})
}

// ListEmployees returns active employees, paginated
func ListEmployees(c *gin.Context) {
	offset, limit := pagination(c)
	var employees []models.Employee
	config.DB.Where("is_active = ?", true).Order("id").Offset(offset).Limit(limit).Find(&employees)
	c.JSON(http.StatusOK, gin.H{"count": len(employees), "employees": employees})
}

// GetEmployee returns one employee with their documents
func GetEmployee(c *gin.Context) {
	var employee models.Employee
	if err := config.DB.Preload("Documents").First(&employee, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employee": employee})
}

// UpdateEmployee applies a partial update — admin only
func UpdateEmployee(c *gin.Context) {
	var employee models.Employee
	if err := config.DB.First(&employee, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email != nil && *req.Email != employee.Email {
		var other models.Employee
		if err := config.DB.Where("email = ? AND id <> ?", *req.Email, employee.ID).First(&other).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Employee with this email already exists"})
			return
		}
		employee.Email = *req.Email
	}
	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		employee.PhoneNumber = *req.PhoneNumber
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Employee with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee updated", "employee": employee})
}

// ArchiveEmployee snapshots the employee into the archive and removes the
// live row, as one transaction — admin only
func ArchiveEmployee(c *gin.Context) {
	var employee models.Employee
	if err := config.DB.First(&employee, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	archived := models.ArchivedEmployee{
		OriginalID:       employee.ID,
		FirstName:        employee.FirstName,
		LastName:         employee.LastName,
		Email:            employee.Email,
		PhoneNumber:      employee.PhoneNumber,
		Position:         employee.Position,
		IsActive:         false,
		RegistrationDate: employee.RegistrationDate,
		ArchiveDate:      today(),
		ArchivedReason:   archiveReason(c),
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&archived).Error; err != nil {
			return err
		}
		return tx.Delete(&employee).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive employee"})
		return
	}
	c.Status(http.StatusNoContent)
}
