package main

import (
	"log"
	"time"

	"debt_flow_app_go/config"
	"debt_flow_app_go/db"
	"debt_flow_app_go/handlers"
	"debt_flow_app_go/middleware"
	"debt_flow_app_go/models"
	"debt_flow_app_go/services"
	"debt_flow_app_go/services/jobs"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.DCA{},
		&models.Case{},
		&models.Action{},
		&models.MLPrediction{},
		&models.CaseOutcome{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Public routes (no authentication required)
	e.POST("/api/auth/login", handlers.LoginHandler)
	e.POST("/api/auth/signup", handlers.SignupHandler)
	e.POST("/api/auth/logout", handlers.LogoutHandler)

	// Protected routes
	api := e.Group("/api")
	api.Use(middleware.RequireAuth())
	{
		api.GET("/me", handlers.GetCurrentUserHandler)

		// Dashboard
		api.GET("/dashboard/metrics", handlers.DashboardMetricsHandler)

		// Cases
		api.GET("/cases", handlers.GetCasesHandler)
		api.GET("/cases/open", handlers.GetOpenCasesHandler)

		// DCA roster
		api.GET("/dcas", handlers.GetDCAsHandler)

		// Actions
		api.GET("/actions", handlers.GetActionsHandler)
		api.POST("/actions", handlers.CreateActionHandler)
		api.POST("/actions/:id/complete", handlers.CompleteActionHandler)

		// Predictions (read-only)
		api.GET("/predictions", handlers.GetPredictionsHandler)

		// Write routes for oversight staff
		staffRoutes := api.Group("")
		staffRoutes.Use(middleware.RequireRole(models.RoleAdmin, models.RoleEnterpriseUser))
		{
			staffRoutes.POST("/cases", handlers.CreateCaseHandler)
			staffRoutes.POST("/cases/:id/close", handlers.CloseCaseHandler)
			staffRoutes.GET("/reports/cases", handlers.ExportCasesHandler)
		}

		// Admin-only routes
		adminRoutes := api.Group("")
		adminRoutes.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminRoutes.POST("/dcas", handlers.CreateDCAHandler)
		}
	}

	// Background jobs: SLA breach sweep every 5 minutes, session
	// cleanup every hour
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			jobs.SweepSLABreaches(db.DB, cfg)
		}
	}()

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := services.CleanupExpiredSessions(db.DB); err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
			}
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
