// Package ledger implements the authoritative store for transactions,
// accounts, categories and transfers.
//
// The ledger owns its collections: presentation code reads snapshots and
// calls mutation operations, it never mutates records in place. On every
// successful mutation the changed collection is serialized as one JSON
// array and written to the key-value backend under its fixed key. When the
// backend fails, the failure is logged and the ledger degrades to
// in-memory operation for the rest of the session.
package ledger

import (
	"encoding/json"
	"sync"

	"github.com/finflow/backend/internal/keyvalue"
	"github.com/finflow/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// The fixed storage keys, one JSON array per collection.
const (
	KeyTransactions = "TRANSACTIONS"
	KeyAccounts     = "ACCOUNTS"
	KeyCategories   = "CATEGORIES"
	KeyTransfers    = "TRANSFERS"
)

// Ledger is the sole owner of the transaction, account, category and
// transfer collections.
//
// All operations serialize on one mutex. This keeps multi-step mutations,
// most importantly the two-sided balance update of a transfer, invisible
// to readers until they are complete.
type Ledger struct {
	mu       sync.Mutex
	store    keyvalue.Store
	degraded bool

	transactions []models.Transaction
	accounts     []models.Account
	categories   []models.Category
	transfers    []models.Transfer
}

// New initializes a ledger from the key-value store. Collections that have
// never been persisted, or whose persisted value does not parse, start
// from the seed data and are written back immediately.
func New(store keyvalue.Store) *Ledger {
	l := &Ledger{store: store}

	l.categories = loadCollection(l, KeyCategories, models.SeedCategories)
	l.accounts = loadCollection(l, KeyAccounts, models.SeedAccounts)
	l.transactions = loadCollection(l, KeyTransactions, func() []models.Transaction {
		return models.SeedTransactions(l.categories)
	})
	l.transfers = loadCollection(l, KeyTransfers, func() []models.Transfer {
		return []models.Transfer{}
	})

	// The sentinel category must always exist since deleted categories
	// reassign their transactions to it
	if l.indexCategory(models.UncategorizedID) < 0 {
		l.categories = append([]models.Category{models.Uncategorized()}, l.categories...)
		l.persist(KeyCategories, l.categories)
	}

	return l
}

// loadCollection reads one collection from the store. Absent and corrupt
// values fall back to the seed, which is then persisted.
func loadCollection[T any](l *Ledger, key string, seed func() []T) []T {
	value, ok, err := l.store.Get(key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("ledger: reading persisted state failed, using seed data")
		l.degrade()
		return seed()
	}

	if ok {
		var collection []T
		err = json.Unmarshal(value, &collection)
		if err == nil {
			return collection
		}

		log.Warn().Err(err).Str("key", key).Msg("ledger: persisted state is corrupt, using seed data")
	}

	collection := seed()
	l.persist(key, collection)
	return collection
}

// persist serializes a collection and writes it under its key. In degraded
// mode this is a no-op, the ledger keeps working from memory.
func (l *Ledger) persist(key string, collection any) {
	if l.degraded {
		return
	}

	value, err := json.Marshal(collection)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("ledger: serializing state failed")
		return
	}

	err = l.store.Set(key, value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("ledger: persisting state failed")
		l.degrade()
	}
}

func (l *Ledger) degrade() {
	if l.degraded {
		return
	}

	l.degraded = true
	log.Warn().Msg("ledger: storage backend unavailable, operating in-memory for this session")
}

// Degraded reports whether the ledger has fallen back to in-memory
// operation.
func (l *Ledger) Degraded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.degraded
}

// DeleteAll removes every record from every collection. Only the built-in
// Uncategorized category survives.
func (l *Ledger) DeleteAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.transactions = []models.Transaction{}
	l.accounts = []models.Account{}
	l.categories = []models.Category{models.Uncategorized()}
	l.transfers = []models.Transfer{}

	l.persist(KeyTransactions, l.transactions)
	l.persist(KeyAccounts, l.accounts)
	l.persist(KeyCategories, l.categories)
	l.persist(KeyTransfers, l.transfers)
}
