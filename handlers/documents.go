package handlers

import (
	"net/http"
	"time"

	"fleet-compliance-api/config"
	"fleet-compliance-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateDocumentRequest struct {
	DocumentType string     `json:"document_type" binding:"required"`
	FilePath     string     `json:"file_path" binding:"required"`
	UploadDate   *time.Time `json:"upload_date"`
	EmployeeID   *uint      `json:"employee_id"`
	TruckerID    *uint      `json:"trucker_id"`
}

// UpdateDocumentRequest is a patch: nil fields are left untouched. The
// parent reference is fixed at creation and cannot be patched.
type UpdateDocumentRequest struct {
	DocumentType *string `json:"document_type"`
	FilePath     *string `json:"file_path"`
	IsVerified   *bool   `json:"is_verified"`
	VerifiedBy   *string `json:"verified_by"`
}

// CreateDocument uploads a document for an employee or a trucker —
// authenticated users may do this
func CreateDocument(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (req.EmployeeID == nil) == (req.TruckerID == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Document must belong to exactly one of employee or trucker"})
		return
	}

	if req.EmployeeID != nil {
		var employee models.Employee
		if err := config.DB.First(&employee, *req.EmployeeID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
	}
	if req.TruckerID != nil {
		var trucker models.Trucker
		if err := config.DB.First(&trucker, *req.TruckerID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trucker not found"})
			return
		}
	}

	uploaded := today()
	if req.UploadDate != nil {
		uploaded = *req.UploadDate
	}
	document := models.Document{
		DocumentType: req.DocumentType,
		FilePath:     req.FilePath,
		UploadDate:   uploaded,
		EmployeeID:   req.EmployeeID,
		TruckerID:    req.TruckerID,
	}
	if err := config.DB.Create(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create document"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Document created", "document": document})
}

// ListDocuments returns all live documents, paginated
func ListDocuments(c *gin.Context) {
	offset, limit := pagination(c)
	var documents []models.Document
	config.DB.Order("id").Offset(offset).Limit(limit).Find(&documents)
	c.JSON(http.StatusOK, gin.H{"count": len(documents), "documents": documents})
}

// GetDocument returns one document by id
func GetDocument(c *gin.Context) {
	var document models.Document
	if err := config.DB.First(&document, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": document})
}

// UpdateDocument applies a partial update — admin only. Verification is kept
// consistent: VerificationDate is set exactly when IsVerified is, and
// flipping IsVerified off clears the date and the verifier no matter what
// else the payload carries.
func UpdateDocument(c *gin.Context) {
	var document models.Document
	if err := config.DB.First(&document, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.DocumentType != nil {
		document.DocumentType = *req.DocumentType
	}
	if req.FilePath != nil {
		document.FilePath = *req.FilePath
	}
	if req.VerifiedBy != nil {
		document.VerifiedBy = req.VerifiedBy
	}
	if req.IsVerified != nil {
		document.IsVerified = *req.IsVerified
		if *req.IsVerified {
			if document.VerificationDate == nil {
				now := today()
				document.VerificationDate = &now
			}
		} else {
			document.VerificationDate = nil
			document.VerifiedBy = nil
		}
	}

	// Save with Select so cleared pointer fields are written as NULL
	err := config.DB.Model(&document).Updates(map[string]interface{}{
		"document_type":     document.DocumentType,
		"file_path":         document.FilePath,
		"is_verified":       document.IsVerified,
		"verification_date": document.VerificationDate,
		"verified_by":       document.VerifiedBy,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document updated", "document": document})
}

// ArchiveDocument snapshots the document into the archive and removes the
// live row, as one transaction — admin only
func ArchiveDocument(c *gin.Context) {
	var document models.Document
	if err := config.DB.First(&document, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	archived := models.ArchivedDocument{
		OriginalID:       document.ID,
		DocumentType:     document.DocumentType,
		FilePath:         document.FilePath,
		UploadDate:       document.UploadDate,
		IsVerified:       document.IsVerified,
		VerificationDate: document.VerificationDate,
		VerifiedBy:       document.VerifiedBy,
		EmployeeID:       document.EmployeeID,
		TruckerID:        document.TruckerID,
		ArchiveDate:      today(),
		ArchivedReason:   archiveReason(c),
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&archived).Error; err != nil {
			return err
		}
		return tx.Delete(&document).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive document"})
		return
	}
	c.Status(http.StatusNoContent)
}
