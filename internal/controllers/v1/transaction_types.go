package v1

import (
	"fmt"

	"github.com/finflow/backend/internal/currency"
	"github.com/finflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`

	// These fields are computed
	Category      models.Category `json:"category"`                       // The resolved category
	DisplayAmount string          `json:"displayAmount" example:"-$80"`   // Amount as the UI renders it
}

func (co Controller) newTransaction(c *gin.Context, model models.Transaction) Transaction {
	return Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", baseURL(c), model.ID),
		},
		Category:      co.ledger.ResolveCategory(model.CategoryID),
		DisplayAmount: currency.Format(model.Amount, false),
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the Transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of Transactions
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Account     string `form:"account"`     // By ID of the account
	Category    string `form:"category"`    // By ID of the category
	Type        string `form:"type"`        // Income or Expense
	From        string `form:"from"`        // Earliest date, inclusive
	Until       string `form:"until"`       // Latest date, inclusive
	Description string `form:"description"` // By description, supports * globbing
}

// validateTransactionAmount checks the form-level amount rule. The UI
// rejects amounts below 1 on entry, the API mirrors that.
func validateTransactionAmount(amount decimal.Decimal) error {
	if amount.Abs().LessThan(decimal.NewFromInt(1)) {
		return errAmountTooSmall
	}

	return nil
}

// validateCategory checks that a referenced category exists. An unset
// reference is allowed, the transaction then resolves to Uncategorized.
func (co Controller) validateCategory(id uuid.UUID) error {
	if id == uuid.Nil {
		return nil
	}

	if _, ok := co.ledger.Category(id); !ok {
		return errCategoryNotFound
	}

	return nil
}
