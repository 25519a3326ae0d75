package ledger

import "errors"

var (
	ErrAccountNotFound   = errors.New("there is no account matching your request")
	ErrSameAccount       = errors.New("the source and destination account of a transfer must be different")
	ErrInsufficientFunds = errors.New("the transfer amount exceeds the balance of the source account")
	ErrImmutableCategory = errors.New("the built-in Uncategorized category cannot be modified or deleted")
)
