// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rental-ops/backend/internal/integration/entrypoint/controller"
	"github.com/rental-ops/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	categoryController    *controller.CategoryController
	ledgerController      *controller.LedgerController
	propertyController    *controller.PropertyController
	reportController      *controller.ReportController
	exportRateLimiter     *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	ledgerController *controller.LedgerController,
	propertyController *controller.PropertyController,
	reportController *controller.ReportController,
	exportRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		categoryController:    categoryController,
		ledgerController:      ledgerController,
		propertyController:    propertyController,
		reportController:      reportController,
		exportRateLimiter:     exportRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PUT("/rename", r.categoryController.Rename)
				categories.PUT("/reorder", r.categoryController.Reorder)
				categories.DELETE("", r.categoryController.Delete)
			}
		}

		if r.ledgerController != nil {
			ledger := v1.Group("/ledger")
			{
				ledger.GET("/time-series", r.ledgerController.TimeSeries)
				ledger.GET("/summary", r.ledgerController.Summary)
				if r.exportRateLimiter != nil {
					ledger.GET("/export", r.exportRateLimiter.Middleware(), r.ledgerController.Export)
				} else {
					ledger.GET("/export", r.ledgerController.Export)
				}
			}
		}

		if r.propertyController != nil {
			properties := v1.Group("/properties")
			{
				properties.GET("", r.propertyController.List)
				properties.POST("", r.propertyController.Create)
				properties.DELETE("/:name", r.propertyController.Delete)
			}
		}

		if r.reportController != nil && r.exportRateLimiter != nil {
			reports := v1.Group("/reports")
			{
				reports.POST("/monthly-statement", r.exportRateLimiter.Middleware(), r.reportController.QueueMonthlyStatement)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
