package v1_test

import (
	"net/http"

	v1 "github.com/finflow/backend/internal/controllers/v1"
	"github.com/finflow/backend/internal/models"
	"github.com/finflow/backend/internal/types"
	"github.com/finflow/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCashFlowReport() {
	suite.createTestTransaction(models.TransactionEditable{
		Description: "Rent",
		Amount:      decimal.NewFromInt(500),
		Type:        models.TypeExpense,
		Date:        types.NewDay(2026, 1, 15),
	})
	suite.createTestTransaction(models.TransactionEditable{
		Description: "Salary",
		Amount:      decimal.NewFromInt(1000),
		Type:        models.TypeIncome,
		Date:        types.NewDay(2026, 2, 10),
	})

	tests := []struct {
		name    string
		query   string
		groups  int
		income  int64
		expense int64 // signed
	}{
		{"year view includes both", "view=year&reference=2026-06-30", 2, 1000, -500},
		{"month view includes one", "view=month&reference=2026-01-01", 1, 0, -500},
		{"day view exact date", "view=day&reference=2026-02-10", 1, 1000, 0},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodGet, "/v1/cashflow?"+tt.query, nil)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.CashFlowResponse
			test.DecodeResponse(suite.T(), &recorder, &response)

			suite.Assert().Len(response.Data.Groups, tt.groups)
			suite.Assert().True(response.Data.Income.Equal(decimal.NewFromInt(tt.income)), "income is %s", response.Data.Income)
			suite.Assert().True(response.Data.Expense.Equal(decimal.NewFromInt(tt.expense)), "expense is %s", response.Data.Expense)
		})
	}
}

func (suite *TestSuiteStandard) TestCashFlowGroupOrder() {
	suite.createTestTransaction(models.TransactionEditable{Date: types.NewDay(2026, 2, 10)})
	suite.createTestTransaction(models.TransactionEditable{Date: types.NewDay(2026, 1, 15)})

	recorder := suite.request(http.MethodGet, "/v1/cashflow?view=year&reference=2026-01-01", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CashFlowResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.Groups, 2)
	suite.Assert().Equal("Jan", response.Data.Groups[0].Label)
	suite.Assert().Equal("Feb", response.Data.Groups[1].Label)
}

func (suite *TestSuiteStandard) TestCashFlowInvalid() {
	tests := []struct {
		name  string
		query string
	}{
		{"invalid view", "view=decade"},
		{"invalid reference", "reference=January"},
		{"invalid account", "account=not-a-uuid"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodGet, "/v1/cashflow?"+tt.query, nil)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}
}
