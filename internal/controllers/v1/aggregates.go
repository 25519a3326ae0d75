package v1

import (
	"net/http"

	"github.com/finflow/backend/internal/currency"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Aggregates struct {
	Balance             decimal.Decimal `json:"balance" example:"3800"`              // Sum of all transaction amounts
	Income              decimal.Decimal `json:"income" example:"5000"`               // Sum of all income amounts
	Expense             decimal.Decimal `json:"expense" example:"-1200"`             // Sum of all expense amounts, non-positive
	TotalAccountBalance decimal.Decimal `json:"totalAccountBalance" example:"7230"`  // Sum of all account balances

	// These fields are computed for display
	DisplayBalance string `json:"displayBalance" example:"+$3.80K"`
	DisplayIncome  string `json:"displayIncome" example:"+$5.00K"`
	DisplayExpense string `json:"displayExpense" example:"-$1.20K"`
}

type AggregatesResponse struct {
	Data *Aggregates `json:"data"` // The aggregate values over all transactions
}

// GetAggregates returns the derived totals of the whole ledger. Balance
// always equals income plus expense since expenses are stored with a
// non-positive sign.
func (co Controller) GetAggregates(c *gin.Context) {
	balance := co.ledger.Balance()
	income := co.ledger.Income()
	expense := co.ledger.Expense()

	c.JSON(http.StatusOK, AggregatesResponse{
		Data: &Aggregates{
			Balance:             balance,
			Income:              income,
			Expense:             expense,
			TotalAccountBalance: co.ledger.TotalAccountBalance(),
			DisplayBalance:      currency.Format(balance, true),
			DisplayIncome:       currency.Format(income, true),
			DisplayExpense:      currency.Format(expense, true),
		},
	})
}
