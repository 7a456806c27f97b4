// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rental-ops/backend/config"
	"github.com/rental-ops/backend/internal/application/usecase/category"
	"github.com/rental-ops/backend/internal/application/usecase/ledger"
	"github.com/rental-ops/backend/internal/application/usecase/property"
	"github.com/rental-ops/backend/internal/application/usecase/report"
	"github.com/rental-ops/backend/internal/application/usecase/transaction"
	"github.com/rental-ops/backend/internal/infra/server/router"
	"github.com/rental-ops/backend/internal/integration/adapters"
	"github.com/rental-ops/backend/internal/integration/email"
	"github.com/rental-ops/backend/internal/integration/email/templates"
	"github.com/rental-ops/backend/internal/integration/entrypoint/controller"
	"github.com/rental-ops/backend/internal/integration/entrypoint/middleware"
	"github.com/rental-ops/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	ReportWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	propertyRepo := persistence.NewPropertyRepository(db)
	reportQueueRepo := persistence.NewReportQueueRepository(db)

	// Create adapters/services
	clock := adapters.NewSystemClock()
	reportService := email.NewService(reportQueueRepo)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create template renderer: %w", err)
	}
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	reportWorker := email.NewWorker(reportQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	renameCategoryUseCase := category.NewRenameCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
	reorderCategoriesUseCase := category.NewReorderCategoriesUseCase(categoryRepo)

	// Create ledger use cases
	timeSeriesUseCase := ledger.NewGetTimeSeriesUseCase(transactionRepo)
	summaryUseCase := ledger.NewGetPropertySummaryUseCase(transactionRepo, clock)
	exportUseCase := ledger.NewExportTransactionsUseCase(transactionRepo)

	// Create property use cases
	listPropertiesUseCase := property.NewListPropertiesUseCase(propertyRepo)
	createPropertyUseCase := property.NewCreatePropertyUseCase(propertyRepo)
	deletePropertyUseCase := property.NewDeletePropertyUseCase(propertyRepo)

	// Create report use cases
	queueStatementUseCase := report.NewQueueMonthlyStatementUseCase(transactionRepo, propertyRepo, reportService, clock)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		renameCategoryUseCase,
		deleteCategoryUseCase,
		reorderCategoriesUseCase,
	)

	ledgerController := controller.NewLedgerController(
		timeSeriesUseCase,
		summaryUseCase,
		exportUseCase,
	)

	propertyController := controller.NewPropertyController(
		listPropertiesUseCase,
		createPropertyUseCase,
		deletePropertyUseCase,
	)

	reportController := controller.NewReportController(queueStatementUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var exportRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		exportRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		exportRateLimiter = middleware.NewRateLimiter()
	}

	// Create router
	r := router.NewRouter(
		healthController,
		transactionController,
		categoryController,
		ledgerController,
		propertyController,
		reportController,
		exportRateLimiter,
	)

	return &Injector{
		Config:       cfg,
		DB:           db,
		Router:       r,
		ReportWorker: reportWorker,
	}, nil
}
