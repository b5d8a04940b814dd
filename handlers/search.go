package handlers

import (
	"net/http"

	"fleet-compliance-api/config"
	"fleet-compliance-api/models"

	"github.com/gin-gonic/gin"
)

const searchCap = 10

// SearchHit is a tagged union over the searchable entity types: exactly one
// of Employee/Trucker is set, matching Type.
type SearchHit struct {
	Type       string           `json:"type"`
	ID         uint             `json:"id"`
	Name       string           `json:"name"`
	Identifier string           `json:"identifier"`
	IsActive   bool             `json:"is_active"`
	Employee   *models.Employee `json:"employee,omitempty"`
	Trucker    *models.Trucker  `json:"trucker,omitempty"`
}

// Search runs a case-insensitive substring match over active employees
// (name, email) and active truckers (name, email, license, truck ID).
// Employee hits come first, each list capped at 10. An empty query matches
// every active row; the caps keep that cheap, so it doubles as "browse all".
func Search(c *gin.Context) {
	query := c.Query("query")
	pattern := "%" + query + "%"
	results := []SearchHit{}

	var employees []models.Employee
	config.DB.Where("is_active = ?", true).
		Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", pattern, pattern, pattern).
		Order("id").Limit(searchCap).Find(&employees)
	for i := range employees {
		emp := &employees[i]
		results = append(results, SearchHit{
			Type:       "employee",
			ID:         emp.ID,
			Name:       emp.FullName(),
			Identifier: emp.Email,
			IsActive:   emp.IsActive,
			Employee:   emp,
		})
	}

	var truckers []models.Trucker
	config.DB.Where("is_active = ?", true).
		Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR driver_license_number LIKE ? OR truck_id_number LIKE ?",
			pattern, pattern, pattern, pattern, pattern).
		Order("id").Limit(searchCap).Find(&truckers)
	for i := range truckers {
		trk := &truckers[i]
		results = append(results, SearchHit{
			Type:       "trucker",
			ID:         trk.ID,
			Name:       trk.FullName(),
			Identifier: trk.DriverLicenseNumber,
			IsActive:   trk.IsActive,
			Trucker:    trk,
		})
	}

	c.JSON(http.StatusOK, gin.H{"count": len(results), "results": results})
}
