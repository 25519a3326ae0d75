package ledger_test

import (
	"encoding/json"
	"errors"

	"github.com/finflow/backend/internal/keyvalue"
	"github.com/finflow/backend/internal/ledger"
	"github.com/finflow/backend/internal/models"
	"github.com/finflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

// brokenStore fails every operation. Used to verify the in-memory
// fallback.
type brokenStore struct{}

func (brokenStore) Get(_ string) ([]byte, bool, error) { return nil, false, keyvalue.ErrStorage }
func (brokenStore) Set(_ string, _ []byte) error       { return keyvalue.ErrStorage }
func (brokenStore) Delete(_ string) error              { return keyvalue.ErrStorage }
func (brokenStore) Ping() error                        { return keyvalue.ErrStorage }
func (brokenStore) Close() error                       { return nil }

// TestSeedOnFirstRun verifies that an empty store is initialized with the
// seed data and that the seed is written back.
func (suite *TestSuiteStandard) TestSeedOnFirstRun() {
	store := keyvalue.NewMemory()
	l := ledger.New(store)

	suite.Assert().Len(l.Categories(), 3)
	suite.Assert().Len(l.Accounts(), 3)
	suite.Assert().Len(l.Transactions(ledger.TransactionFilter{}), 1)
	suite.Assert().Empty(l.Transfers())

	for _, key := range []string{ledger.KeyTransactions, ledger.KeyAccounts, ledger.KeyCategories, ledger.KeyTransfers} {
		_, ok, err := store.Get(key)
		suite.Require().Nil(err)
		suite.Assert().True(ok, "seed for %s was not persisted", key)
	}
}

// TestPersistenceRoundTrip verifies that a fresh ledger over the same
// store reproduces the collections exactly.
func (suite *TestSuiteStandard) TestPersistenceRoundTrip() {
	category := suite.createTestCategory("Food")
	account := suite.createTestAccount("Checking", 500)

	suite.ledger.AddTransaction(models.TransactionEditable{
		Description: "Grocery",
		Amount:      decimal.NewFromInt(80),
		Type:        models.TypeExpense,
		CategoryID:  category.ID,
		Date:        types.NewDay(2026, 1, 15),
		AccountID:   account.ID,
	})

	to := suite.createTestAccount("Saving", 0)
	_, err := suite.ledger.TransferMoney(models.TransferEditable{
		FromAccountID: account.ID,
		ToAccountID:   to.ID,
		Amount:        decimal.NewFromInt(100),
		Date:          types.NewDay(2026, 1, 16),
	})
	suite.Require().Nil(err)

	reloaded := ledger.New(suite.store)

	// Comparing serialized forms sidesteps the monotonic clock reading
	// that time.Time values lose on a JSON round trip
	suite.assertSameJSON(suite.ledger.Transactions(ledger.TransactionFilter{}), reloaded.Transactions(ledger.TransactionFilter{}))
	suite.assertSameJSON(suite.ledger.Accounts(), reloaded.Accounts())
	suite.assertSameJSON(suite.ledger.Categories(), reloaded.Categories())
	suite.assertSameJSON(suite.ledger.Transfers(), reloaded.Transfers())
}

func (suite *TestSuiteStandard) assertSameJSON(expected, actual any) {
	expectedJSON, err := json.Marshal(expected)
	suite.Require().Nil(err)
	actualJSON, err := json.Marshal(actual)
	suite.Require().Nil(err)
	suite.Assert().JSONEq(string(expectedJSON), string(actualJSON))
}

// TestCorruptValueReseeds verifies that a value that does not parse falls
// back to the seed instead of failing initialization.
func (suite *TestSuiteStandard) TestCorruptValueReseeds() {
	store := keyvalue.NewMemory()
	suite.Require().Nil(store.Set(ledger.KeyAccounts, []byte("{ not json")))

	l := ledger.New(store)

	suite.Assert().Len(l.Accounts(), 3, "corrupt collection was not reseeded")
	suite.Assert().False(l.Degraded())

	// The reseeded value replaces the corrupt one
	value, ok, err := store.Get(ledger.KeyAccounts)
	suite.Require().Nil(err)
	suite.Require().True(ok)
	suite.Assert().NotEqual([]byte("{ not json"), value)
}

// TestDegradedMode verifies that a failing backend degrades the ledger to
// in-memory operation instead of breaking it.
func (suite *TestSuiteStandard) TestDegradedMode() {
	l := ledger.New(brokenStore{})
	suite.Require().True(l.Degraded())

	// Mutations keep working from memory
	transaction := l.AddTransaction(models.TransactionEditable{
		Description: "Coffee",
		Amount:      decimal.NewFromInt(4),
		Type:        models.TypeExpense,
	})

	_, ok := l.Transaction(transaction.ID)
	suite.Assert().True(ok)
}

// TestSentinelRestoredOnLoad verifies that the Uncategorized category is
// recreated when the persisted state does not contain it.
func (suite *TestSuiteStandard) TestSentinelRestoredOnLoad() {
	store := keyvalue.NewMemory()
	suite.Require().Nil(store.Set(ledger.KeyCategories, []byte("[]")))

	l := ledger.New(store)

	found := false
	for _, category := range l.Categories() {
		if category.ID == models.UncategorizedID {
			found = true
		}
	}
	suite.Assert().True(found)
}

// TestDeleteAll verifies the full wipe: everything is gone except the
// sentinel category, and the wipe is persisted.
func (suite *TestSuiteStandard) TestDeleteAll() {
	suite.createTestAccount("Checking", 500)
	suite.createTestCategory("Food")
	suite.ledger.AddTransaction(models.TransactionEditable{
		Description: "Grocery",
		Amount:      decimal.NewFromInt(80),
		Type:        models.TypeExpense,
	})

	suite.ledger.DeleteAll()

	suite.Assert().Empty(suite.ledger.Transactions(ledger.TransactionFilter{}))
	suite.Assert().Empty(suite.ledger.Accounts())
	suite.Assert().Empty(suite.ledger.Transfers())

	suite.Require().Len(suite.ledger.Categories(), 1)
	suite.Assert().Equal(models.UncategorizedID, suite.ledger.Categories()[0].ID)

	reloaded := ledger.New(suite.store)
	suite.Assert().Empty(reloaded.Transactions(ledger.TransactionFilter{}))
}

// TestExport verifies that the export contains all four collections.
func (suite *TestSuiteStandard) TestExport() {
	suite.createTestAccount("Checking", 500)
	suite.ledger.AddTransaction(models.TransactionEditable{
		Description: "Grocery",
		Amount:      decimal.NewFromInt(80),
		Type:        models.TypeExpense,
	})

	export := suite.ledger.Export()

	suite.Assert().Len(export.Transactions, 1)
	suite.Assert().Len(export.Accounts, 1)
	suite.Assert().Len(export.Categories, 1)
	suite.Assert().Empty(export.Transfers)
}

// TestDegradedModeGuards verifies that transfer guards still apply in
// degraded mode.
func (suite *TestSuiteStandard) TestDegradedModeGuards() {
	l := ledger.New(brokenStore{})

	from := l.AddAccount(models.AccountEditable{Name: "A", Balance: decimal.NewFromInt(10)})
	to := l.AddAccount(models.AccountEditable{Name: "B"})

	_, err := l.TransferMoney(models.TransferEditable{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		Amount:        decimal.NewFromInt(100),
	})
	suite.Assert().True(errors.Is(err, ledger.ErrInsufficientFunds))
}
