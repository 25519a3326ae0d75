package ledger

import (
	"github.com/finflow/backend/internal/models"
)

// ExportData is the full state of the ledger. Loading it into a fresh
// ledger over an empty store reproduces identical collections.
type ExportData struct {
	Transactions []models.Transaction `json:"transactions"`
	Accounts     []models.Account     `json:"accounts"`
	Categories   []models.Category    `json:"categories"`
	Transfers    []models.Transfer    `json:"transfers"`
}

// Export returns a copy of all collections.
func (l *Ledger) Export() ExportData {
	l.mu.Lock()
	defer l.mu.Unlock()

	data := ExportData{
		Transactions: make([]models.Transaction, len(l.transactions)),
		Accounts:     make([]models.Account, len(l.accounts)),
		Categories:   make([]models.Category, len(l.categories)),
		Transfers:    make([]models.Transfer, len(l.transfers)),
	}

	copy(data.Transactions, l.transactions)
	copy(data.Accounts, l.accounts)
	copy(data.Categories, l.categories)
	copy(data.Transfers, l.transfers)

	return data
}
