package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/finflow/backend/internal/controllers/v1"
	"github.com/finflow/backend/internal/models"
	"github.com/finflow/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccountCreate() {
	account := suite.createTestAccount(models.AccountEditable{
		Name:    "Savings",
		Balance: decimal.NewFromInt(2500),
	})

	suite.Assert().Equal("Savings", account.Name)
	suite.Assert().Equal("+$2.50K", account.DisplayBalance)
	suite.Assert().Contains(account.Links.Transactions, fmt.Sprintf("account=%s", account.ID))
}

func (suite *TestSuiteStandard) TestAccountCreateInvalid() {
	recorder := suite.request(http.MethodPost, "/v1/accounts", map[string]any{"balance": 100})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountList() {
	suite.createTestAccount(models.AccountEditable{Name: "Checking"})
	suite.createTestAccount(models.AccountEditable{Name: "Savings"})

	recorder := suite.request(http.MethodGet, "/v1/accounts", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestAccountUpdate() {
	account := suite.createTestAccount(models.AccountEditable{Name: "Cash", Balance: decimal.NewFromInt(100)})

	recorder := suite.request(http.MethodPatch, fmt.Sprintf("/v1/accounts/%s", account.ID), map[string]any{
		"name": "Wallet",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Wallet", response.Data.Name)
	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromInt(100)), "patching the name changed the balance")
}

func (suite *TestSuiteStandard) TestAccountDelete() {
	account := suite.createTestAccount(models.AccountEditable{Name: "Cash"})
	transaction := suite.createTestTransaction(models.TransactionEditable{
		Description: "Lunch",
		AccountID:   account.ID,
	})

	recorder := suite.request(http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", account.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The transaction survives with its account reference cleared
	recorder = suite.request(http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(uuid.Nil, response.Data.AccountID)
}

func (suite *TestSuiteStandard) TestAccountNotFound() {
	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		suite.Run(method, func() {
			body := any(nil)
			if method == http.MethodPatch {
				body = map[string]any{"name": "Other"}
			}

			recorder := suite.request(method, fmt.Sprintf("/v1/accounts/%s", uuid.New()), body)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
		})
	}
}
