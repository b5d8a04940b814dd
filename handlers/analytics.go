package handlers

import (
	"net/http"
	"time"

	"fleet-compliance-api/analytics"
	"fleet-compliance-api/config"
	"fleet-compliance-api/models"

	"github.com/gin-gonic/gin"
)

// GetComplianceData returns the headline live counts
func GetComplianceData(c *gin.Context) {
	var totalEmployees, activeEmployees, totalTruckers, activeTruckers int64
	var documentsUploaded, documentsVerified int64

	config.DB.Model(&models.Employee{}).Count(&totalEmployees)
	config.DB.Model(&models.Employee{}).Where("is_active = ?", true).Count(&activeEmployees)
	config.DB.Model(&models.Trucker{}).Count(&totalTruckers)
	config.DB.Model(&models.Trucker{}).Where("is_active = ?", true).Count(&activeTruckers)
	config.DB.Model(&models.Document{}).Count(&documentsUploaded)
	config.DB.Model(&models.Document{}).Where("is_verified = ?", true).Count(&documentsVerified)

	c.JSON(http.StatusOK, gin.H{
		"total_employees":      totalEmployees,
		"active_employees":     activeEmployees,
		"total_truckers":       totalTruckers,
		"active_truckers":      activeTruckers,
		"documents_uploaded":   documentsUploaded,
		"documents_verified":   documentsVerified,
		"unverified_documents": documentsUploaded - documentsVerified,
	})
}

// GetEmployeeGrowth buckets live employees by registration month and
// projects the next month from a least-squares fit
func GetEmployeeGrowth(c *gin.Context) {
	var dates []time.Time
	config.DB.Model(&models.Employee{}).Order("registration_date").Pluck("registration_date", &dates)

	buckets := analytics.MonthlyBuckets(dates)
	c.JSON(http.StatusOK, gin.H{
		"monthly_growth":         buckets,
		"total_employees":        len(dates),
		"average_monthly_growth": analytics.AverageMonthlyGrowth(buckets),
		"projected_next_month":   analytics.ProjectNextMonth(buckets),
	})
}

// GetTruckerDistribution reports truckers per province and per company
func GetTruckerDistribution(c *gin.Context) {
	var truckers []models.Trucker
	config.DB.Select("province_of_issue", "company_name").Find(&truckers)

	provinceDistribution := map[string]int{}
	companies := make([]*string, 0, len(truckers))
	for _, t := range truckers {
		provinceDistribution[t.ProvinceOfIssue]++
		companies = append(companies, t.CompanyName)
	}
	shares, mostCommon := analytics.CompanyDistribution(companies)

	c.JSON(http.StatusOK, gin.H{
		"province_distribution": provinceDistribution,
		"company_distribution":  shares,
		"most_common_type":      mostCommon,
		"predictive_trend":      "Stable distribution among existing companies.",
	})
}

// GetBusinessImpact reports churn and document compliance across live and
// archived data
func GetBusinessImpact(c *gin.Context) {
	var liveEmployees, archivedEmployees int64
	var liveTruckers, archivedTruckers int64
	var liveDocuments, archivedDocuments, verifiedDocuments int64

	config.DB.Model(&models.Employee{}).Count(&liveEmployees)
	config.DB.Model(&models.ArchivedEmployee{}).Count(&archivedEmployees)
	config.DB.Model(&models.Trucker{}).Count(&liveTruckers)
	config.DB.Model(&models.ArchivedTrucker{}).Count(&archivedTruckers)
	config.DB.Model(&models.Document{}).Count(&liveDocuments)
	config.DB.Model(&models.ArchivedDocument{}).Count(&archivedDocuments)
	config.DB.Model(&models.Document{}).Where("is_verified = ?", true).Count(&verifiedDocuments)

	c.JSON(http.StatusOK, gin.H{
		"employee_churn_rate":      analytics.ChurnRate(archivedEmployees, liveEmployees),
		"trucker_churn_rate":       analytics.ChurnRate(archivedTruckers, liveTruckers),
		"document_compliance_rate": analytics.ComplianceRate(verifiedDocuments, liveDocuments, archivedDocuments),
		"potential_revenue_impact": "Improved compliance reduces risks and potential fines, leading to stable revenue.",
		"operational_efficiency_impact": "Automated document verification and personnel tracking streamline operations.",
		"strategic_recommendations": []string{
			"Implement continuous compliance monitoring.",
			"Enhance training for new personnel to reduce churn.",
			"Explore partnerships with dominant trucking companies for better integration.",
		},
	})
}
