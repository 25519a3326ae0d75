package ledger

import (
	"github.com/finflow/backend/internal/models"
	"github.com/google/uuid"
)

// AddCategory creates a new category.
func (l *Ledger) AddCategory(editable models.CategoryEditable) models.Category {
	l.mu.Lock()
	defer l.mu.Unlock()

	category := models.NewCategory(editable)
	l.categories = append(l.categories, category)
	l.persist(KeyCategories, l.categories)

	return category
}

// UpdateCategory merges the patch into the category with the given ID.
// Transactions store only the category ID, so renames propagate to every
// historic transaction on the next read. The built-in Uncategorized
// category cannot be updated.
func (l *Ledger) UpdateCategory(id uuid.UUID, patch models.CategoryPatch) (models.Category, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if id == models.UncategorizedID {
		return models.Category{}, true, ErrImmutableCategory
	}

	i := l.indexCategory(id)
	if i < 0 {
		return models.Category{}, false, nil
	}

	patch.Apply(&l.categories[i])
	l.persist(KeyCategories, l.categories)

	return l.categories[i], true, nil
}

// DeleteCategory removes the category with the given ID and reassigns its
// transactions to the built-in Uncategorized category. The sentinel itself
// cannot be deleted.
func (l *Ledger) DeleteCategory(id uuid.UUID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if id == models.UncategorizedID {
		return true, ErrImmutableCategory
	}

	i := l.indexCategory(id)
	if i < 0 {
		return false, nil
	}

	l.categories = append(l.categories[:i], l.categories[i+1:]...)

	reassigned := false
	for j := range l.transactions {
		if l.transactions[j].CategoryID == id {
			l.transactions[j].CategoryID = models.UncategorizedID
			reassigned = true
		}
	}

	l.persist(KeyCategories, l.categories)
	if reassigned {
		l.persist(KeyTransactions, l.transactions)
	}

	return true, nil
}

// Category returns the category with the given ID.
func (l *Ledger) Category(id uuid.UUID) (models.Category, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexCategory(id)
	if i < 0 {
		return models.Category{}, false
	}

	return l.categories[i], true
}

// ResolveCategory returns the category a transaction references. Unknown
// references resolve to the Uncategorized sentinel so that a dangling ID
// can never break a read.
func (l *Ledger) ResolveCategory(id uuid.UUID) models.Category {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.resolveCategory(id)
}

// resolveCategory is ResolveCategory for callers already holding the mutex.
func (l *Ledger) resolveCategory(id uuid.UUID) models.Category {
	i := l.indexCategory(id)
	if i < 0 {
		return models.Uncategorized()
	}

	return l.categories[i]
}

// Categories returns all categories in insertion order.
func (l *Ledger) Categories() []models.Category {
	l.mu.Lock()
	defer l.mu.Unlock()

	categories := make([]models.Category, len(l.categories))
	copy(categories, l.categories)
	return categories
}

func (l *Ledger) indexCategory(id uuid.UUID) int {
	for i := range l.categories {
		if l.categories[i].ID == id {
			return i
		}
	}

	return -1
}
