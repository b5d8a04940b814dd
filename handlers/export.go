package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"fleet-compliance-api/config"
	"fleet-compliance-api/models"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ExportEmployees dumps all live employees as a CSV attachment — admin only
func ExportEmployees(c *gin.Context) {
	var employees []models.Employee
	config.DB.Order("id").Find(&employees)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"ID", "First Name", "Last Name", "Email", "Phone Number", "Position", "Is Active", "Registration Date"})
	for _, emp := range employees {
		w.Write([]string{
			strconv.FormatUint(uint64(emp.ID), 10),
			emp.FirstName,
			emp.LastName,
			emp.Email,
			emp.PhoneNumber,
			emp.Position,
			strconv.FormatBool(emp.IsActive),
			emp.RegistrationDate.Format(dateLayout),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=employees.csv")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ExportTruckers dumps all live truckers as a CSV attachment — admin only
func ExportTruckers(c *gin.Context) {
	var truckers []models.Trucker
	config.DB.Order("id").Find(&truckers)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"ID", "First Name", "Last Name", "Email", "Phone Number", "Driver License", "Province", "Truck ID", "Company", "Is Active", "Registration Date"})
	for _, trk := range truckers {
		w.Write([]string{
			strconv.FormatUint(uint64(trk.ID), 10),
			trk.FirstName,
			trk.LastName,
			derefOrEmpty(trk.Email),
			trk.PhoneNumber,
			trk.DriverLicenseNumber,
			trk.ProvinceOfIssue,
			derefOrEmpty(trk.TruckIDNumber),
			derefOrEmpty(trk.CompanyName),
			strconv.FormatBool(trk.IsActive),
			trk.RegistrationDate.Format(dateLayout),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=truckers.csv")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
