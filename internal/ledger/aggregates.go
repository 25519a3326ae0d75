package ledger

import (
	"github.com/finflow/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Aggregates are computed fresh on every read. The collections are
// UI-scale, recomputation is O(n) and cheaper than cache invalidation.

// Balance returns the sum of all transaction amounts. Since amounts are
// signed, this always equals Income plus Expense.
func (l *Ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	balance := decimal.Zero
	for _, t := range l.transactions {
		balance = balance.Add(t.Amount)
	}

	return balance
}

// Income returns the sum of all income transaction amounts. The result is
// non-negative.
func (l *Ledger) Income() decimal.Decimal {
	return l.sumByType(models.TypeIncome)
}

// Expense returns the sum of all expense transaction amounts in the signed
// convention. The result is non-positive.
func (l *Ledger) Expense() decimal.Decimal {
	return l.sumByType(models.TypeExpense)
}

func (l *Ledger) sumByType(transactionType models.TransactionType) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	sum := decimal.Zero
	for _, t := range l.transactions {
		if t.Type == transactionType {
			sum = sum.Add(t.Amount)
		}
	}

	return sum
}
