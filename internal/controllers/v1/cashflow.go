package v1

import (
	"net/http"

	"github.com/finflow/backend/internal/currency"
	"github.com/finflow/backend/internal/httputil"
	"github.com/finflow/backend/internal/ledger"
	"github.com/finflow/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type CashFlowQuery struct {
	View      string `form:"view"`      // year, month or day. Defaults to month.
	Reference string `form:"reference"` // Reference date. Defaults to today.
	Account   string `form:"account"`   // Optional account ID to restrict the report to
}

type CashFlowReport struct {
	ledger.Report

	// These fields are computed
	DisplayIncome  string `json:"displayIncome" example:"+$5.00K"`  // Income total as the UI renders it
	DisplayExpense string `json:"displayExpense" example:"-$1.20K"` // Expense total as the UI renders it
	DisplayBalance string `json:"displayBalance" example:"+$3.80K"` // Balance as the UI renders it
}

type CashFlowResponse struct {
	Data  *CashFlowReport `json:"data"`                                              // The cash-flow report
	Error *string         `json:"error" example:"the view must be one of year, month or day"` // The error, if any occurred
}

// GetCashFlow returns the cash-flow report for the calendar period the
// reference date falls in, at the requested granularity.
func (co Controller) GetCashFlow(c *gin.Context) {
	var query CashFlowQuery

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&query)

	view := ledger.ViewMonth
	if query.View != "" {
		view = ledger.View(query.View)
		if !view.Valid() {
			e := errViewInvalid.Error()
			c.JSON(status(errViewInvalid), CashFlowResponse{Error: &e})
			return
		}
	}

	reference := types.Today()
	if query.Reference != "" {
		var err error
		reference, err = types.ParseDay(query.Reference)
		if err != nil {
			e := errReferenceInvalid.Error()
			c.JSON(status(errReferenceInvalid), CashFlowResponse{Error: &e})
			return
		}
	}

	accountID, err := httputil.UUIDFromString(query.Account)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashFlowResponse{Error: &e})
		return
	}

	report := co.ledger.CashFlow(view, reference, accountID)
	data := CashFlowReport{
		Report:         report,
		DisplayIncome:  currency.Format(report.Income, true),
		DisplayExpense: currency.Format(report.Expense, true),
		DisplayBalance: currency.Format(report.Balance, true),
	}

	c.JSON(http.StatusOK, CashFlowResponse{Data: &data})
}
