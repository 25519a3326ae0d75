package models

import (
	"github.com/finflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Seed data is used when a collection has never been persisted. The values
// match the defaults of the finflow web application.

// SeedCategories returns the initial category set.
func SeedCategories() []Category {
	return []Category{
		Uncategorized(),
		NewCategory(CategoryEditable{Name: "Salary", Icon: "Wallet"}),
		NewCategory(CategoryEditable{Name: "Grocery", Icon: "Apple"}),
	}
}

// SeedAccounts returns the initial account set.
func SeedAccounts() []Account {
	return []Account{
		NewAccount(AccountEditable{Name: "Debit", Balance: decimal.NewFromInt(100)}),
		NewAccount(AccountEditable{Name: "Saving", Balance: decimal.NewFromInt(100)}),
		NewAccount(AccountEditable{Name: "Cash", Balance: decimal.NewFromInt(100)}),
	}
}

// SeedTransactions returns the initial transaction set. The category is
// resolved against the seed categories by name.
func SeedTransactions(categories []Category) []Transaction {
	var salary Category
	for _, category := range categories {
		if category.Name == "Salary" {
			salary = category
			break
		}
	}

	return []Transaction{
		NewTransaction(TransactionEditable{
			Description: "Grocery",
			Amount:      decimal.NewFromInt(250),
			Type:        TypeIncome,
			CategoryID:  salary.ID,
			Date:        types.NewDay(2025, 12, 1),
		}),
	}
}
