package ledger_test

import (
	"github.com/finflow/backend/internal/ledger"
	"github.com/finflow/backend/internal/models"
	"github.com/finflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TestTransferMoney verifies the conservation property: the source loses
// exactly the amount the destination gains, the total across all accounts
// is unchanged.
func (suite *TestSuiteStandard) TestTransferMoney() {
	from := suite.createTestAccount("Debit", 500)
	to := suite.createTestAccount("Saving", 100)
	totalBefore := suite.ledger.TotalAccountBalance()

	transfer, err := suite.ledger.TransferMoney(models.TransferEditable{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		Amount:        decimal.NewFromInt(150),
		Date:          types.NewDay(2026, 1, 15),
	})
	suite.Require().Nil(err)
	suite.Assert().NotEqual(uuid.Nil, transfer.ID)

	fromAfter, ok := suite.ledger.Account(from.ID)
	suite.Require().True(ok)
	toAfter, ok := suite.ledger.Account(to.ID)
	suite.Require().True(ok)

	suite.Assert().True(fromAfter.Balance.Equal(decimal.NewFromInt(350)), "source balance is %s", fromAfter.Balance)
	suite.Assert().True(toAfter.Balance.Equal(decimal.NewFromInt(250)), "destination balance is %s", toAfter.Balance)
	suite.Assert().True(suite.ledger.TotalAccountBalance().Equal(totalBefore), "total balance changed")

	// The transfer is recorded append-only
	suite.Assert().Len(suite.ledger.Transfers(), 1)
}

// TestTransferMoneyGuards verifies the store-level guards: same account,
// unknown accounts and insufficient funds are rejected without changing
// any balance.
func (suite *TestSuiteStandard) TestTransferMoneyGuards() {
	from := suite.createTestAccount("Debit", 100)
	to := suite.createTestAccount("Saving", 100)

	tests := []struct {
		name     string
		editable models.TransferEditable
		expected error
	}{
		{
			"same account",
			models.TransferEditable{FromAccountID: from.ID, ToAccountID: from.ID, Amount: decimal.NewFromInt(10)},
			ledger.ErrSameAccount,
		},
		{
			"unknown source",
			models.TransferEditable{FromAccountID: uuid.New(), ToAccountID: to.ID, Amount: decimal.NewFromInt(10)},
			ledger.ErrAccountNotFound,
		},
		{
			"insufficient funds",
			models.TransferEditable{FromAccountID: from.ID, ToAccountID: to.ID, Amount: decimal.NewFromInt(150)},
			ledger.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.ledger.TransferMoney(tt.editable)
			suite.Assert().ErrorIs(err, tt.expected)
		})
	}

	fromAfter, _ := suite.ledger.Account(from.ID)
	toAfter, _ := suite.ledger.Account(to.ID)
	suite.Assert().True(fromAfter.Balance.Equal(decimal.NewFromInt(100)))
	suite.Assert().True(toAfter.Balance.Equal(decimal.NewFromInt(100)))
	suite.Assert().Empty(suite.ledger.Transfers())
}

// TestUpdateAccount verifies partial patches.
func (suite *TestSuiteStandard) TestUpdateAccount() {
	account := suite.createTestAccount("Cash", 100)

	name := "Wallet"
	updated, ok := suite.ledger.UpdateAccount(account.ID, models.AccountPatch{Name: &name})
	suite.Require().True(ok)
	suite.Assert().Equal("Wallet", updated.Name)
	suite.Assert().True(updated.Balance.Equal(decimal.NewFromInt(100)), "patching the name changed the balance")

	// Balances may go negative, overdraft is a valid state
	balance := decimal.NewFromInt(-50)
	updated, ok = suite.ledger.UpdateAccount(account.ID, models.AccountPatch{Balance: &balance})
	suite.Require().True(ok)
	suite.Assert().True(updated.Balance.Equal(decimal.NewFromInt(-50)))
}

// TestDeleteAccountClearsReferences verifies that transactions referencing
// a deleted account keep existing with the reference cleared.
func (suite *TestSuiteStandard) TestDeleteAccountClearsReferences() {
	account := suite.createTestAccount("Cash", 100)

	transaction := suite.ledger.AddTransaction(models.TransactionEditable{
		Description: "Lunch",
		Amount:      decimal.NewFromInt(12),
		Type:        models.TypeExpense,
		Date:        types.NewDay(2026, 1, 15),
		AccountID:   account.ID,
	})

	suite.Assert().True(suite.ledger.DeleteAccount(account.ID))
	suite.Assert().False(suite.ledger.DeleteAccount(account.ID), "second delete is not a no-op")

	after, ok := suite.ledger.Transaction(transaction.ID)
	suite.Require().True(ok, "transaction was deleted together with the account")
	suite.Assert().Equal(uuid.Nil, after.AccountID)
}
