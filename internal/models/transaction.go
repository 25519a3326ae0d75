package models

import (
	"github.com/finflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"
)

// Valid reports whether the type is one of the two defined values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single recorded monetary event.
//
// The sign of Amount carries the direction: inflows are non-negative,
// outflows are non-positive. The sign always agrees with Type, this is
// enforced on every create and update.
type Transaction struct {
	DefaultModel
	TransactionEditable
}

type TransactionEditable struct {
	Description string          `json:"description" binding:"required" example:"Weekly groceries"` // What the money was spent on or received for
	Amount      decimal.Decimal `json:"amount" example:"14.03"`                                    // Stored with the sign matching Type
	Type        TransactionType `json:"type" binding:"required" example:"Expense"`                 // Income or Expense
	CategoryID  uuid.UUID       `json:"categoryId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // Category the transaction belongs to
	Date        types.Day       `json:"date" example:"2026-01-15"`                                 // Calendar date of the transaction
	AccountID   uuid.UUID       `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`  // Optional account the transaction belongs to
}

// NewTransaction returns a Transaction with a fresh ID for the editable
// fields. The amount sign is normalized to match the type, whatever the
// sign of the input was.
func NewTransaction(editable TransactionEditable) Transaction {
	editable.Amount = SignedAmount(editable.Amount, editable.Type)

	return Transaction{
		DefaultModel:        newDefaultModel(),
		TransactionEditable: editable,
	}
}

// SignedAmount normalizes an amount to the signed convention: expenses are
// non-positive, income is non-negative.
func SignedAmount(amount decimal.Decimal, t TransactionType) decimal.Decimal {
	if t == TypeExpense {
		return amount.Abs().Neg()
	}

	return amount.Abs()
}

// TransactionPatch is a partial update to a Transaction. Nil fields are
// left unchanged.
type TransactionPatch struct {
	Description *string          `json:"description" example:"Weekly groceries"`
	Amount      *decimal.Decimal `json:"amount" example:"14.03"`
	Type        *TransactionType `json:"type" example:"Expense"`
	CategoryID  *uuid.UUID       `json:"categoryId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`
	Date        *types.Day       `json:"date" example:"2026-01-15"`
	AccountID   *uuid.UUID       `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
}

// Apply merges the patch into the transaction and re-normalizes the amount
// sign against the effective type. Unlike the upstream web application,
// updates and creates use the same sign rule, so the invariant holds for
// every stored record.
func (p TransactionPatch) Apply(transaction *Transaction) {
	if p.Description != nil {
		transaction.Description = *p.Description
	}

	if p.Type != nil {
		transaction.Type = *p.Type
	}

	if p.Amount != nil {
		transaction.Amount = *p.Amount
	}

	if p.CategoryID != nil {
		transaction.CategoryID = *p.CategoryID
	}

	if p.Date != nil {
		transaction.Date = *p.Date
	}

	if p.AccountID != nil {
		transaction.AccountID = *p.AccountID
	}

	transaction.Amount = SignedAmount(transaction.Amount, transaction.Type)
	transaction.Touch()
}
