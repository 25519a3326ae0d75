package ledger

import (
	"github.com/finflow/backend/internal/models"
	"github.com/finflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// View is the granularity of a cash-flow report.
type View string

const (
	ViewYear  View = "year"
	ViewMonth View = "month"
	ViewDay   View = "day"
)

// Valid reports whether the view is one of the defined granularities.
func (v View) Valid() bool {
	return v == ViewYear || v == ViewMonth || v == ViewDay
}

// Group is one bar of the cash-flow chart: the income and the absolute
// expense of one period.
type Group struct {
	Label   string          `json:"label" example:"Jan"` // Display label of the period
	Income  decimal.Decimal `json:"income" example:"5000"`
	Expense decimal.Decimal `json:"expense" example:"1200"` // Absolute value, charts plot it as a positive bar
}

// Report is the cash flow of one period at one granularity. The totals
// use the signed convention: Expense is non-positive and Balance equals
// Income plus Expense.
type Report struct {
	View      View            `json:"view" example:"month"`
	Reference types.Day       `json:"reference" example:"2026-01-15"`
	Groups    []Group         `json:"groups"`
	Income    decimal.Decimal `json:"income" example:"5000"`
	Expense   decimal.Decimal `json:"expense" example:"-1200"`
	Balance   decimal.Decimal `json:"balance" example:"3800"`
}

// CashFlow selects the transactions of the calendar period the reference
// date falls in (same year, same month or same day, depending on the
// view), optionally restricted to one account, and groups them for
// charting. The year view groups by month, the other views group by exact
// date. Groups are sorted chronologically, not by label.
func (l *Ledger) CashFlow(view View, reference types.Day, accountID uuid.UUID) Report {
	l.mu.Lock()
	defer l.mu.Unlock()

	report := Report{
		View:      view,
		Reference: reference,
		Groups:    []Group{},
		Income:    decimal.Zero,
		Expense:   decimal.Zero,
		Balance:   decimal.Zero,
	}

	type bucket struct {
		day     types.Day
		income  decimal.Decimal
		expense decimal.Decimal
	}
	buckets := make(map[string]*bucket)

	for _, t := range l.transactions {
		if !inPeriod(view, reference, t.Date) {
			continue
		}

		if accountID != uuid.Nil && t.AccountID != accountID {
			continue
		}

		report.Balance = report.Balance.Add(t.Amount)
		if t.Type == models.TypeIncome {
			report.Income = report.Income.Add(t.Amount)
		} else {
			report.Expense = report.Expense.Add(t.Amount)
		}

		// In the year view all transactions of a month share a bucket,
		// keyed by the first day of that month
		day := t.Date
		if view == ViewYear {
			year, month, _ := t.Date.Time().Date()
			day = types.NewDay(year, month, 1)
		}

		b, ok := buckets[day.String()]
		if !ok {
			b = &bucket{day: day, income: decimal.Zero, expense: decimal.Zero}
			buckets[day.String()] = b
		}

		if t.Type == models.TypeIncome {
			b.income = b.income.Add(t.Amount)
		} else {
			b.expense = b.expense.Add(t.Amount.Abs())
		}
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}

	// Chronological, not alphabetical: "Apr" must not sort before "Jan"
	slices.SortFunc(ordered, func(a, b *bucket) int {
		switch {
		case a.day.Before(b.day):
			return -1
		case a.day.After(b.day):
			return 1
		default:
			return 0
		}
	})

	for _, b := range ordered {
		label := b.day.Time().Format("Jan 02")
		if view == ViewYear {
			label = b.day.Time().Format("Jan")
		}

		report.Groups = append(report.Groups, Group{
			Label:   label,
			Income:  b.income,
			Expense: b.expense,
		})
	}

	return report
}

// inPeriod reports whether a date falls into the same calendar period as
// the reference date at the given granularity.
func inPeriod(view View, reference, date types.Day) bool {
	switch view {
	case ViewYear:
		return date.Year() == reference.Year()
	case ViewMonth:
		return types.MonthOf(reference.Time()).Contains(date)
	default:
		return date.Equal(reference)
	}
}
