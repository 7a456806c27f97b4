// Package db provides database connection and management functionality.
package db

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rental-ops/backend/internal/domain/entity"
	"github.com/rental-ops/backend/internal/integration/persistence/model"
)

// SeedDemoData inserts a small demo portfolio for local development. It is
// a no-op when transactions already exist.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.TransactionModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing transactions: %w", err)
	}
	if count > 0 {
		return nil
	}

	properties := []*entity.Property{
		entity.NewProperty("Lakehouse"),
		entity.NewProperty("Cabin"),
	}
	for _, property := range properties {
		if err := db.Create(model.PropertyFromEntity(property)).Error; err != nil {
			return fmt.Errorf("failed to seed property %q: %w", property.Name, err)
		}
	}

	seedTxns := []struct {
		date        string
		txnType     entity.TransactionType
		category    string
		amount      int64
		description string
		property    string
	}{
		{"2025-05-03", entity.TransactionTypeIncome, "Booking Revenue", 1850, "Memorial Day weekend booking", "Lakehouse"},
		{"2025-05-10", entity.TransactionTypeExpense, "Utilities", 145, "Electric bill", "Lakehouse"},
		{"2025-06-01", entity.TransactionTypeIncome, "Booking Revenue", 2400, "Two week-long stays", "Lakehouse"},
		{"2025-06-08", entity.TransactionTypeExpense, "Repairs", 320, "Dock board replacement", "Lakehouse"},
		{"2025-06-15", entity.TransactionTypeIncome, "Cleaning Fees", 150, "Turnover cleaning fee", "Cabin"},
		{"2025-06-20", entity.TransactionTypeExpense, "Supplies", 85, "Linens and consumables", "Cabin"},
		{"2025-07-04", entity.TransactionTypeIncome, "Booking Revenue", 1975, "Holiday week booking", "Cabin"},
		{"2025-07-12", entity.TransactionTypeExpense, "Mortgage", 1210, "July mortgage payment", "Lakehouse"},
	}

	for _, seed := range seedTxns {
		date, err := parseSeedDate(seed.date)
		if err != nil {
			return err
		}
		txn := entity.NewTransaction(
			date,
			seed.txnType,
			seed.category,
			decimal.NewFromInt(seed.amount),
			seed.description,
			seed.property,
		)
		if err := db.Create(model.TransactionFromEntity(txn)).Error; err != nil {
			return fmt.Errorf("failed to seed transaction %q: %w", seed.description, err)
		}
	}

	return nil
}

// parseSeedDate parses a YYYY-MM-DD seed literal.
func parseSeedDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid seed date %q: %w", value, err)
	}
	return date, nil
}
