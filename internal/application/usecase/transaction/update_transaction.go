// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rental-ops/backend/internal/application/adapter"
	"github.com/rental-ops/backend/internal/domain/entity"
	domainerror "github.com/rental-ops/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left untouched on the stored record.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Date          *time.Time
	Type          *entity.TransactionType
	Category      *string
	Amount        *decimal.Decimal
	Description   *string
	Property      *string
}

// UpdateTransactionOutput represents the output of transaction update.
// Found is false when no record matched the id; the update is then a
// silent no-op, not an error.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
	Found       bool
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute merges the provided fields onto the matching record.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return &UpdateTransactionOutput{Found: false}, nil
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"date must be a valid calendar date",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		transaction.Date = entity.NormalizeDate(*input.Date)
	}

	if input.Type != nil {
		if !isValidTransactionType(*input.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'income' or 'expense'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = *input.Type
	}

	if input.Category != nil {
		transaction.Category = *input.Category
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNegativeTransactionAmount,
				"amount must not be negative; the ledger side is derived from type",
				domainerror.ErrNegativeTransactionAmount,
			)
		}
		transaction.Amount = *input.Amount
	}

	if input.Description != nil {
		if len(*input.Description) > MaxDescriptionLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingTransactionFields,
				fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
				nil,
			)
		}
		transaction.Description = *input.Description
	}

	if input.Property != nil {
		if *input.Property == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingTransactionProperty,
				"property is required",
				domainerror.ErrMissingTransactionProperty,
			)
		}
		transaction.Property = *input.Property
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
		Found:       true,
	}, nil
}
