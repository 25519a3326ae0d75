package v1

import (
	"fmt"

	"github.com/finflow/backend/internal/currency"
	"github.com/finflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/accounts/fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`                  // The account itself
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions?account=fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // Transactions for this account
}

type Account struct {
	models.Account
	Links AccountLinks `json:"links"`

	// These fields are computed
	DisplayBalance string `json:"displayBalance" example:"+$2.74K"` // Balance as the UI renders it
}

func newAccount(c *gin.Context, model models.Account) Account {
	return Account{
		Account: model,
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", baseURL(c), model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", baseURL(c), model.ID),
		},
		DisplayBalance: currency.Format(model.Balance, true),
	}
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the Account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountListResponse struct {
	Data  []Account `json:"data"`                                                          // List of Accounts
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
