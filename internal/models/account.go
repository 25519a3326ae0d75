package models

import (
	"github.com/shopspring/decimal"
)

// Account is a named money container with a running balance.
// The balance is signed, a negative balance represents debt or overdraft.
type Account struct {
	DefaultModel
	AccountEditable
}

type AccountEditable struct {
	Name    string          `json:"name" binding:"required" example:"Savings"` // Name of the account
	Balance decimal.Decimal `json:"balance" example:"2735.17"`                 // Current balance. May be negative.
}

// NewAccount returns an Account with a fresh ID for the editable fields.
func NewAccount(editable AccountEditable) Account {
	return Account{
		DefaultModel:    newDefaultModel(),
		AccountEditable: editable,
	}
}

// AccountPatch is a partial update to an Account. Nil fields are left
// unchanged.
type AccountPatch struct {
	Name    *string          `json:"name" example:"Savings"`
	Balance *decimal.Decimal `json:"balance" example:"2735.17"`
}

// Apply merges the patch into the account.
func (p AccountPatch) Apply(account *Account) {
	if p.Name != nil {
		account.Name = *p.Name
	}

	if p.Balance != nil {
		account.Balance = *p.Balance
	}

	account.Touch()
}
