// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rental-ops/backend/internal/application/usecase/category"
	"github.com/rental-ops/backend/internal/application/usecase/ledger"
	"github.com/rental-ops/backend/internal/application/usecase/property"
	"github.com/rental-ops/backend/internal/application/usecase/report"
	"github.com/rental-ops/backend/internal/application/usecase/transaction"
	"github.com/rental-ops/backend/internal/domain/entity"
	"github.com/rental-ops/backend/internal/infra/server/router"
	"github.com/rental-ops/backend/internal/integration/email"
	"github.com/rental-ops/backend/internal/integration/email/templates"
	"github.com/rental-ops/backend/internal/integration/entrypoint/controller"
	"github.com/rental-ops/backend/internal/integration/entrypoint/middleware"
	"github.com/rental-ops/backend/internal/integration/persistence"
	"github.com/rental-ops/backend/internal/integration/persistence/model"
	"github.com/rental-ops/backend/test/integration/mock"
)

var serverInit sync.Once
var portInit sync.Once
var testServerPort int
var testDB *mock.Db
var testClock *mock.Clock
var testEmailSender *email.MockEmailSender
var testWorker *email.Worker

type testContext struct {
	uri     string
	headers map[string]string
	client  *http.Client
	db      *mock.Db

	response          *response
	lastTransactionID uuid.UUID
}

type response struct {
	status int
	raw    []byte
	body   any
}

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"transactions": &model.TransactionModel{},
			"categories":   &model.CategoryModel{},
			"properties":   &model.PropertyModel{},
			"report_queue": &model.ReportQueueModel{},
		}),
	}

	testDB = test.db
	if testClock == nil {
		testClock = mock.NewClock()
	}
	if testEmailSender == nil {
		testEmailSender = email.NewMockEmailSender()
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// Data setup steps
	ctx.Given(`^a property exists with name "([^"]*)"$`, test.aPropertyExistsWithName)
	ctx.Given(`^a "([^"]*)" transaction of "([^"]*)" in category "([^"]*)" for property "([^"]*)" on "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^a "([^"]*)" transaction of "([^"]*)" in category "([^"]*)" for property "([^"]*)" on "([^"]*)" described as "([^"]*)"$`, test.aTransactionExistsWithDescription)
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)" scoped to "([^"]*)"$`, test.aCategoryExists)

	// Statement delivery steps
	ctx.Given(`^statement delivery fails permanently$`, test.statementDeliveryFailsPermanently)
	ctx.Given(`^statement delivery fails temporarily$`, test.statementDeliveryFailsTemporarily)
	ctx.When(`^the report worker processes pending jobs$`, test.theReportWorkerProcessesPendingJobs)
	ctx.Then(`^(\d+) statement emails? should have been sent$`, test.statementEmailsShouldHaveBeenSent)
	ctx.Then(`^the last statement email should be addressed to "([^"]*)"$`, test.theLastStatementEmailShouldBeAddressedTo)
	ctx.Then(`^the last statement email subject should contain "([^"]*)"$`, test.theLastStatementEmailSubjectShouldContain)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.lastTransactionID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	if testEmailSender != nil {
		testEmailSender.Reset()
	}
	if testClock != nil {
		testClock.SetCurrentTime(time.Now().UTC())
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		// Create repositories
		transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
		categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
		propertyRepo := persistence.NewPropertyRepository(testDB.DbConn)
		reportQueueRepo := persistence.NewReportQueueRepository(testDB.DbConn)

		// Create adapters/services
		reportService := email.NewService(reportQueueRepo)

		renderer, err := templates.NewRenderer()
		if err != nil {
			panic(fmt.Sprintf("failed to create template renderer: %v", err))
		}
		testWorker = email.NewWorker(reportQueueRepo, testEmailSender, renderer, email.WorkerConfig{
			PollInterval: time.Hour, // Driven manually via ProcessNow
			BatchSize:    10,
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
		summaryUseCase := ledger.NewGetPropertySummaryUseCase(transactionRepo, testClock)
		exportUseCase := ledger.NewExportTransactionsUseCase(transactionRepo)

		// Create property use cases
		listPropertiesUseCase := property.NewListPropertiesUseCase(propertyRepo)
		createPropertyUseCase := property.NewCreatePropertyUseCase(propertyRepo)
		deletePropertyUseCase := property.NewDeletePropertyUseCase(propertyRepo)

		// Create report use cases
		queueStatementUseCase := report.NewQueueMonthlyStatementUseCase(transactionRepo, propertyRepo, reportService, testClock)

		// Create controllers
		healthController := controller.NewHealthController(func() bool {
			return testDB != nil && testDB.DbConn != nil
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

		exportRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)

		r := router.NewRouter(
			healthController,
			transactionController,
			categoryController,
			ledgerController,
			propertyController,
			reportController,
			exportRateLimiter,
		)
		engine := r.Setup("test")

		go func() {
			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) todayIs(date string) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	testClock.SetCurrentTime(parsed.Add(12 * time.Hour))
	return nil
}

func (t *testContext) aPropertyExistsWithName(name string) error {
	propertyModel := model.PropertyFromEntity(entity.NewProperty(name))
	return t.db.DbConn.Create(propertyModel).Error
}

func (t *testContext) aTransactionExists(txnType, amount, categoryName, propertyName, date string) error {
	return t.aTransactionExistsWithDescription(txnType, amount, categoryName, propertyName, date, "")
}

func (t *testContext) aTransactionExistsWithDescription(txnType, amount, categoryName, propertyName, date, description string) error {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid transaction date %q: %w", date, err)
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid transaction amount %q: %w", amount, err)
	}

	txn := entity.NewTransaction(
		parsedDate,
		entity.TransactionType(txnType),
		categoryName,
		parsedAmount,
		description,
		propertyName,
	)
	return t.db.DbConn.Create(model.TransactionFromEntity(txn)).Error
}

func (t *testContext) aCategoryExists(name, categoryType, properties string) error {
	var scope []string
	for _, propertyName := range strings.Split(properties, ",") {
		scope = append(scope, strings.TrimSpace(propertyName))
	}

	var count int64
	err := t.db.DbConn.Model(&model.CategoryModel{}).Where("type = ?", categoryType).Count(&count).Error
	if err != nil {
		return err
	}

	cat := entity.NewCategory(name, entity.CategoryType(categoryType), scope, int(count))
	return t.db.DbConn.Create(model.CategoryFromEntity(cat)).Error
}

func (t *testContext) statementDeliveryFailsPermanently() error {
	testEmailSender.SetFailure(errors.New("422 validation error"), true)
	return nil
}

func (t *testContext) statementDeliveryFailsTemporarily() error {
	testEmailSender.SetFailure(errors.New("503 service unavailable"), false)
	return nil
}

func (t *testContext) theReportWorkerProcessesPendingJobs() error {
	if testWorker == nil {
		return errors.New("report worker is not initialized")
	}
	testWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) statementEmailsShouldHaveBeenSent(quantity int) error {
	if got := len(testEmailSender.SentEmails); got != quantity {
		return fmt.Errorf("expected %d sent statement emails, got %d", quantity, got)
	}
	return nil
}

func (t *testContext) theLastStatementEmailShouldBeAddressedTo(recipient string) error {
	if len(testEmailSender.SentEmails) == 0 {
		return errors.New("no statement emails were sent")
	}
	last := testEmailSender.SentEmails[len(testEmailSender.SentEmails)-1]
	if last.To != recipient {
		return fmt.Errorf("expected recipient %q, got %q", recipient, last.To)
	}
	return nil
}

func (t *testContext) theLastStatementEmailSubjectShouldContain(fragment string) error {
	if len(testEmailSender.SentEmails) == 0 {
		return errors.New("no statement emails were sent")
	}
	last := testEmailSender.SentEmails[len(testEmailSender.SentEmails)-1]
	if !strings.Contains(last.Subject, fragment) {
		return fmt.Errorf("expected subject containing %q, got %q", fragment, last.Subject)
	}
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders substitutes IDs captured from earlier responses.
func (t *testContext) replacePlaceholders(content string) string {
	return strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		raw:    bodyBytes,
	}

	var responseBody any
	if err := json.Unmarshal(bodyBytes, &responseBody); err == nil {
		t.response.body = responseBody

		// Capture created resource IDs for later placeholder substitution
		if object, ok := responseBody.(map[string]any); ok {
			if idStr, ok := object["id"].(string); ok {
				if id, err := uuid.Parse(idStr); err == nil {
					t.lastTransactionID = id
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.body == nil {
		return fmt.Errorf("response is not JSON: %s", string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, string(t.response.raw))
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if value := getFieldValue(t.response.body, field); value == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = object

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
