package v1

import (
	"errors"
	"net/http"

	"github.com/finflow/backend/internal/ledger"
)

type httpError struct {
	Error string `json:"error" example:"there is no resource for the specified ID"`
}

var (
	errNotFound            = errors.New("there is no resource for the specified ID")
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Transaction errors
var (
	errAmountTooSmall   = errors.New("the amount must be at least 1")
	errTypeInvalid      = errors.New("the transaction type must be Income or Expense")
	errCategoryNotFound = errors.New("the specified category does not exist")
)

// Report errors
var (
	errViewInvalid      = errors.New("the view must be one of year, month or day")
	errReferenceInvalid = errors.New("the reference must be a date in YYYY-MM-DD format")
)

// status returns the appropriate HTTP status for a ledger or validation
// error.
func status(err error) int {
	if errors.Is(err, errNotFound) || errors.Is(err, ledger.ErrAccountNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, ledger.ErrImmutableCategory) {
		return http.StatusMethodNotAllowed
	}

	return http.StatusBadRequest
}
