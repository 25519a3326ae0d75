package ledger

import (
	"strings"

	"github.com/finflow/backend/internal/models"
	"github.com/finflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// AddTransaction records a new transaction. The amount sign is normalized
// to the signed convention before storage, whatever the sign of the input.
// Inputs are assumed to be validated by the caller.
func (l *Ledger) AddTransaction(editable models.TransactionEditable) models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	if editable.Date.IsZero() {
		editable.Date = types.Today()
	}

	transaction := models.NewTransaction(editable)
	l.transactions = append(l.transactions, transaction)
	l.persist(KeyTransactions, l.transactions)

	return transaction
}

// UpdateTransaction merges the patch into the transaction with the given
// ID. The amount sign is re-normalized against the effective type. An
// unknown ID is a no-op, reported through the boolean.
func (l *Ledger) UpdateTransaction(id uuid.UUID, patch models.TransactionPatch) (models.Transaction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexTransaction(id)
	if i < 0 {
		return models.Transaction{}, false
	}

	patch.Apply(&l.transactions[i])
	l.persist(KeyTransactions, l.transactions)

	return l.transactions[i], true
}

// DeleteTransaction removes the transaction with the given ID. Deleting an
// unknown ID is a no-op, so the operation is idempotent.
func (l *Ledger) DeleteTransaction(id uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexTransaction(id)
	if i < 0 {
		return false
	}

	l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
	l.persist(KeyTransactions, l.transactions)

	return true
}

// Transaction returns the transaction with the given ID.
func (l *Ledger) Transaction(id uuid.UUID) (models.Transaction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexTransaction(id)
	if i < 0 {
		return models.Transaction{}, false
	}

	return l.transactions[i], true
}

// TransactionFilter restricts the transaction list. Zero values match
// everything. Description supports * globbing.
type TransactionFilter struct {
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Type        models.TransactionType
	From        types.Day
	Until       types.Day
	Description string
}

func (f TransactionFilter) matches(t models.Transaction) bool {
	if f.AccountID != uuid.Nil && t.AccountID != f.AccountID {
		return false
	}

	if f.CategoryID != uuid.Nil && t.CategoryID != f.CategoryID {
		return false
	}

	if f.Type != "" && t.Type != f.Type {
		return false
	}

	if !f.From.IsZero() && t.Date.Before(f.From) {
		return false
	}

	if !f.Until.IsZero() && t.Date.After(f.Until) {
		return false
	}

	if f.Description != "" && !glob.Glob(strings.ToLower(f.Description), strings.ToLower(t.Description)) {
		return false
	}

	return true
}

// Transactions returns all transactions matching the filter, sorted
// descending by date. The sort is stable so that records sharing a date
// keep their insertion order.
func (l *Ledger) Transactions(filter TransactionFilter) []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	transactions := make([]models.Transaction, 0, len(l.transactions))
	for _, t := range l.transactions {
		if filter.matches(t) {
			transactions = append(transactions, t)
		}
	}

	// The canonical date form sorts chronologically as a string
	slices.SortStableFunc(transactions, func(a, b models.Transaction) int {
		return strings.Compare(b.Date.String(), a.Date.String())
	})

	return transactions
}

func (l *Ledger) indexTransaction(id uuid.UUID) int {
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			return i
		}
	}

	return -1
}
