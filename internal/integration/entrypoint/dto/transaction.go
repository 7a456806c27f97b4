// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/rental-ops/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	Category    string  `json:"category,omitempty" binding:"omitempty,max=50"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Property    string  `json:"property" binding:"required,min=1,max=100"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Absent fields leave the stored record untouched.
type UpdateTransactionRequest struct {
	Date        *string  `json:"date,omitempty"`
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,max=50"`
	Amount      *float64 `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Property    *string  `json:"property,omitempty" binding:"omitempty,min=1,max=100"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Property    string    `json:"property"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID.String(),
		Date:        txn.Date.Format("2006-01-02"),
		Type:        string(txn.Type),
		Category:    txn.Category,
		Amount:      txn.Amount.String(),
		Description: txn.Description,
		Property:    txn.Property,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts a transaction slice to a list response DTO.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: responses,
		Total:        len(responses),
	}
}
