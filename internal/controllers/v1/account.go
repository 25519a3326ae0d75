package v1

import (
	"net/http"

	"github.com/finflow/backend/internal/httputil"
	"github.com/finflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// registerAccountRoutes registers the routes for accounts with the
// RouterGroup that is passed.
func (co Controller) registerAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetAccounts)
		r.POST("", co.CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", co.OptionsAccountDetail)
		r.GET("/:id", co.GetAccount)
		r.PATCH("/:id", co.UpdateAccount)
		r.DELETE("/:id", co.DeleteAccount)
	}
}

func (co Controller) OptionsAccountDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, ok := co.ledger.Account(uri.ID.UUID); !ok {
		c.JSON(status(errNotFound), httpError{Error: errNotFound.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// CreateAccount creates a new account.
func (co Controller) CreateAccount(c *gin.Context) {
	var editable models.AccountEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	account := co.ledger.AddAccount(editable)
	data := newAccount(c, account)
	c.JSON(http.StatusCreated, AccountResponse{Data: &data})
}

// GetAccounts returns all accounts.
func (co Controller) GetAccounts(c *gin.Context) {
	data := make([]Account, 0)
	for _, account := range co.ledger.Accounts() {
		data = append(data, newAccount(c, account))
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: data})
}

// GetAccount returns a specific account.
func (co Controller) GetAccount(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	account, ok := co.ledger.Account(uri.ID.UUID)
	if !ok {
		e := errNotFound.Error()
		c.JSON(status(errNotFound), AccountResponse{Error: &e})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// UpdateAccount updates an existing account. Only values to be updated
// need to be specified.
func (co Controller) UpdateAccount(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	var patch models.AccountPatch
	if err := httputil.BindData(c, &patch); err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	account, ok := co.ledger.UpdateAccount(uri.ID.UUID, patch)
	if !ok {
		e := errNotFound.Error()
		c.JSON(status(errNotFound), AccountResponse{Error: &e})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// DeleteAccount deletes an account. Transactions referencing the account
// keep existing with their account reference cleared.
func (co Controller) DeleteAccount(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if !co.ledger.DeleteAccount(uri.ID.UUID) {
		c.JSON(status(errNotFound), httpError{Error: errNotFound.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
