package main

import (
	"net/http"

	"fleet-compliance-api/config"
	"fleet-compliance-api/logger"
	"fleet-compliance-api/metrics"
	"fleet-compliance-api/middleware"
	"fleet-compliance-api/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	config.InitDB(cfg)

	auth := middleware.NewAuth(cfg)
	reqMiddleware := middleware.NewRequestMiddleware(log)

	r := gin.New()
	r.Use(reqMiddleware.ProcessRequest(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Fleet Compliance API",
			"version": "1.0.0",
		})
	})
	r.GET("/metrics", metrics.Handler())

	routes.SetupRoutes(r, auth)

	log.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
