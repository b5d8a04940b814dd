package routes

import (
	"fleet-compliance-api/handlers"
	"fleet-compliance-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, auth *middleware.Auth) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register(auth))
		public.POST("/auth/login", handlers.Login(auth))
	}

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/api")
	authed.Use(auth.AuthRequired())
	{
		authed.GET("/profile", handlers.GetProfile)

		authed.GET("/employees", handlers.ListEmployees)
		authed.GET("/employees/:id", handlers.GetEmployee)
		authed.GET("/truckers", handlers.ListTruckers)
		authed.GET("/truckers/:id", handlers.GetTrucker)

		authed.POST("/documents", handlers.CreateDocument)
		authed.GET("/documents", handlers.ListDocuments)
		authed.GET("/documents/:id", handlers.GetDocument)

		authed.GET("/search", handlers.Search)

		authed.GET("/compliance-data", handlers.GetComplianceData)
		authed.GET("/analytics/employee-growth", handlers.GetEmployeeGrowth)
		authed.GET("/analytics/trucker-distribution", handlers.GetTruckerDistribution)
		authed.GET("/analytics/business-impact", handlers.GetBusinessImpact)
	}

	// ── Administrator routes ───────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(auth.AuthRequired(), auth.AdminRequired())
	{
		admin.GET("/users", handlers.ListUsers)
		admin.GET("/users/:id", handlers.GetUser)

		admin.POST("/employees", handlers.CreateEmployee)
		admin.PUT("/employees/:id", handlers.UpdateEmployee)
		admin.DELETE("/employees/:id", handlers.ArchiveEmployee)

		admin.POST("/truckers", handlers.CreateTrucker)
		admin.PUT("/truckers/:id", handlers.UpdateTrucker)
		admin.DELETE("/truckers/:id", handlers.ArchiveTrucker)

		admin.PUT("/documents/:id", handlers.UpdateDocument)
		admin.DELETE("/documents/:id", handlers.ArchiveDocument)

		admin.GET("/export/employees", handlers.ExportEmployees)
		admin.GET("/export/truckers", handlers.ExportTruckers)
	}
}
