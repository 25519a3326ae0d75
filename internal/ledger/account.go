package ledger

import (
	"github.com/finflow/backend/internal/models"
	"github.com/finflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddAccount creates a new account with its initial balance.
func (l *Ledger) AddAccount(editable models.AccountEditable) models.Account {
	l.mu.Lock()
	defer l.mu.Unlock()

	account := models.NewAccount(editable)
	l.accounts = append(l.accounts, account)
	l.persist(KeyAccounts, l.accounts)

	return account
}

// UpdateAccount merges the patch into the account with the given ID. An
// unknown ID is a no-op, reported through the boolean.
func (l *Ledger) UpdateAccount(id uuid.UUID, patch models.AccountPatch) (models.Account, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexAccount(id)
	if i < 0 {
		return models.Account{}, false
	}

	patch.Apply(&l.accounts[i])
	l.persist(KeyAccounts, l.accounts)

	return l.accounts[i], true
}

// DeleteAccount removes the account with the given ID. Transactions
// referencing the account keep existing with their account reference
// cleared. Transfer records are history and stay untouched.
func (l *Ledger) DeleteAccount(id uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexAccount(id)
	if i < 0 {
		return false
	}

	l.accounts = append(l.accounts[:i], l.accounts[i+1:]...)

	reassigned := false
	for j := range l.transactions {
		if l.transactions[j].AccountID == id {
			l.transactions[j].AccountID = uuid.Nil
			reassigned = true
		}
	}

	l.persist(KeyAccounts, l.accounts)
	if reassigned {
		l.persist(KeyTransactions, l.transactions)
	}

	return true
}

// Account returns the account with the given ID.
func (l *Ledger) Account(id uuid.UUID) (models.Account, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexAccount(id)
	if i < 0 {
		return models.Account{}, false
	}

	return l.accounts[i], true
}

// Accounts returns all accounts in insertion order.
func (l *Ledger) Accounts() []models.Account {
	l.mu.Lock()
	defer l.mu.Unlock()

	accounts := make([]models.Account, len(l.accounts))
	copy(accounts, l.accounts)
	return accounts
}

// TotalAccountBalance returns the sum of all account balances.
func (l *Ledger) TotalAccountBalance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := decimal.Zero
	for _, account := range l.accounts {
		total = total.Add(account.Balance)
	}

	return total
}

// TransferMoney moves money between two accounts and appends a transfer
// record. Both balance updates happen within one critical section, no
// reader can observe a state where only one side has been applied.
//
// The same-account and sufficient-funds rules are also validated in the
// API layer; they are enforced here again so that no caller can corrupt
// the collections.
func (l *Ledger) TransferMoney(editable models.TransferEditable) (models.Transfer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if editable.FromAccountID == editable.ToAccountID {
		return models.Transfer{}, ErrSameAccount
	}

	from := l.indexAccount(editable.FromAccountID)
	to := l.indexAccount(editable.ToAccountID)
	if from < 0 || to < 0 {
		return models.Transfer{}, ErrAccountNotFound
	}

	amount := editable.Amount.Abs()
	if amount.GreaterThan(l.accounts[from].Balance) {
		return models.Transfer{}, ErrInsufficientFunds
	}

	if editable.Date.IsZero() {
		editable.Date = types.Today()
	}
	editable.Amount = amount

	l.accounts[from].Balance = l.accounts[from].Balance.Sub(amount)
	l.accounts[from].Touch()
	l.accounts[to].Balance = l.accounts[to].Balance.Add(amount)
	l.accounts[to].Touch()

	transfer := models.NewTransfer(editable)
	l.transfers = append(l.transfers, transfer)

	l.persist(KeyAccounts, l.accounts)
	l.persist(KeyTransfers, l.transfers)

	return transfer, nil
}

// Transfer returns the transfer with the given ID.
func (l *Ledger) Transfer(id uuid.UUID) (models.Transfer, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, transfer := range l.transfers {
		if transfer.ID == id {
			return transfer, true
		}
	}

	return models.Transfer{}, false
}

// Transfers returns all transfer records in insertion order.
func (l *Ledger) Transfers() []models.Transfer {
	l.mu.Lock()
	defer l.mu.Unlock()

	transfers := make([]models.Transfer, len(l.transfers))
	copy(transfers, l.transfers)
	return transfers
}

func (l *Ledger) indexAccount(id uuid.UUID) int {
	for i := range l.accounts {
		if l.accounts[i].ID == id {
			return i
		}
	}

	return -1
}
