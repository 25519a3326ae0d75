package v1

import (
	"net/http"

	"github.com/finflow/backend/internal/httputil"
	"github.com/finflow/backend/internal/ledger"
	"github.com/finflow/backend/internal/models"
	"github.com/finflow/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// registerTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) registerTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, ok := co.ledger.Transaction(uri.ID.UUID); !ok {
		c.JSON(status(errNotFound), httpError{Error: errNotFound.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// CreateTransaction records a new transaction.
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable models.TransactionEditable

	err := httputil.BindData(c, &editable)
	if err == nil && !editable.Type.Valid() {
		err = errTypeInvalid
	}
	if err == nil {
		err = validateTransactionAmount(editable.Amount)
	}
	if err == nil {
		err = co.validateCategory(editable.CategoryID)
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	transaction := co.ledger.AddTransaction(editable)
	data := co.newTransaction(c, transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// GetTransactions returns the transactions matching the query filters,
// sorted descending by date.
func (co Controller) GetTransactions(c *gin.Context) {
	var query TransactionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&query)

	filter, err := co.transactionFilter(query)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	data := make([]Transaction, 0)
	for _, transaction := range co.ledger.Transactions(filter) {
		data = append(data, co.newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// transactionFilter converts the string query values into a ledger
// filter.
func (co Controller) transactionFilter(query TransactionQueryFilter) (ledger.TransactionFilter, error) {
	var filter ledger.TransactionFilter
	var err error

	filter.AccountID, err = httputil.UUIDFromString(query.Account)
	if err != nil {
		return ledger.TransactionFilter{}, err
	}

	filter.CategoryID, err = httputil.UUIDFromString(query.Category)
	if err != nil {
		return ledger.TransactionFilter{}, err
	}

	if query.Type != "" {
		filter.Type = models.TransactionType(query.Type)
		if !filter.Type.Valid() {
			return ledger.TransactionFilter{}, errTypeInvalid
		}
	}

	if query.From != "" {
		filter.From, err = types.ParseDay(query.From)
		if err != nil {
			return ledger.TransactionFilter{}, err
		}
	}

	if query.Until != "" {
		filter.Until, err = types.ParseDay(query.Until)
		if err != nil {
			return ledger.TransactionFilter{}, err
		}
	}

	filter.Description = query.Description
	return filter, nil
}

// GetTransaction returns a specific transaction.
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	transaction, ok := co.ledger.Transaction(uri.ID.UUID)
	if !ok {
		e := errNotFound.Error()
		c.JSON(status(errNotFound), TransactionResponse{Error: &e})
		return
	}

	data := co.newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// UpdateTransaction updates an existing transaction. Only values to be
// updated need to be specified.
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	var patch models.TransactionPatch
	err := httputil.BindData(c, &patch)
	if err == nil && patch.Type != nil && !patch.Type.Valid() {
		err = errTypeInvalid
	}
	if err == nil && patch.Amount != nil {
		err = validateTransactionAmount(*patch.Amount)
	}
	if err == nil && patch.CategoryID != nil {
		err = co.validateCategory(*patch.CategoryID)
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	transaction, ok := co.ledger.UpdateTransaction(uri.ID.UUID, patch)
	if !ok {
		e := errNotFound.Error()
		c.JSON(status(errNotFound), TransactionResponse{Error: &e})
		return
	}

	data := co.newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// DeleteTransaction deletes a transaction.
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if !co.ledger.DeleteTransaction(uri.ID.UUID) {
		c.JSON(status(errNotFound), httpError{Error: errNotFound.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
