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

func (suite *TestSuiteStandard) TestTransferCreate() {
	from := suite.createTestAccount(models.AccountEditable{Name: "Debit", Balance: decimal.NewFromInt(500)})
	to := suite.createTestAccount(models.AccountEditable{Name: "Saving", Balance: decimal.NewFromInt(100)})

	recorder := suite.request(http.MethodPost, "/v1/transfers", map[string]any{
		"fromAccountId": from.ID.String(),
		"toAccountId":   to.ID.String(),
		"amount":        150,
		"date":          "2026-01-15",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	// Both balances changed
	recorder = suite.request(http.MethodGet, fmt.Sprintf("/v1/accounts/%s", from.ID), nil)
	var fromResponse v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &fromResponse)
	suite.Assert().True(fromResponse.Data.Balance.Equal(decimal.NewFromInt(350)), "source balance is %s", fromResponse.Data.Balance)

	recorder = suite.request(http.MethodGet, fmt.Sprintf("/v1/accounts/%s", to.ID), nil)
	var toResponse v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &toResponse)
	suite.Assert().True(toResponse.Data.Balance.Equal(decimal.NewFromInt(250)), "destination balance is %s", toResponse.Data.Balance)
}

func (suite *TestSuiteStandard) TestTransferCreateInvalid() {
	from := suite.createTestAccount(models.AccountEditable{Name: "Debit", Balance: decimal.NewFromInt(100)})
	to := suite.createTestAccount(models.AccountEditable{Name: "Saving"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{
			"same account",
			map[string]any{"fromAccountId": from.ID.String(), "toAccountId": from.ID.String(), "amount": 10},
			http.StatusBadRequest,
		},
		{
			"unknown source",
			map[string]any{"fromAccountId": uuid.New().String(), "toAccountId": to.ID.String(), "amount": 10},
			http.StatusNotFound,
		},
		{
			"insufficient funds",
			map[string]any{"fromAccountId": from.ID.String(), "toAccountId": to.ID.String(), "amount": 150},
			http.StatusBadRequest,
		},
		{
			"amount below 1",
			map[string]any{"fromAccountId": from.ID.String(), "toAccountId": to.ID.String(), "amount": 0.5},
			http.StatusBadRequest,
		},
		{
			"missing accounts",
			map[string]any{"amount": 10},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPost, "/v1/transfers", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
		})
	}

	// No balance changed
	recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/accounts/%s", from.ID), nil)
	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestTransferList() {
	from := suite.createTestAccount(models.AccountEditable{Name: "Debit", Balance: decimal.NewFromInt(500)})
	to := suite.createTestAccount(models.AccountEditable{Name: "Saving"})

	recorder := suite.request(http.MethodPost, "/v1/transfers", map[string]any{
		"fromAccountId": from.ID.String(),
		"toAccountId":   to.ID.String(),
		"amount":        100,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var created v1.TransferResponse
	test.DecodeResponse(suite.T(), &recorder, &created)

	recorder = suite.request(http.MethodGet, "/v1/transfers", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransferListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(created.Data.ID, response.Data[0].ID)

	recorder = suite.request(http.MethodGet, fmt.Sprintf("/v1/transfers/%s", created.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

// TestTransferImmutable verifies that transfers are append-only: the
// routes for updating and deleting do not exist.
func (suite *TestSuiteStandard) TestTransferImmutable() {
	from := suite.createTestAccount(models.AccountEditable{Name: "Debit", Balance: decimal.NewFromInt(500)})
	to := suite.createTestAccount(models.AccountEditable{Name: "Saving"})

	recorder := suite.request(http.MethodPost, "/v1/transfers", map[string]any{
		"fromAccountId": from.ID.String(),
		"toAccountId":   to.ID.String(),
		"amount":        100,
	})
	var created v1.TransferResponse
	test.DecodeResponse(suite.T(), &recorder, &created)

	recorder = suite.request(http.MethodPatch, fmt.Sprintf("/v1/transfers/%s", created.Data.ID), map[string]any{"amount": 1})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)

	recorder = suite.request(http.MethodDelete, fmt.Sprintf("/v1/transfers/%s", created.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}
