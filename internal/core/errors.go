package core

import (
	"errors"
	"fmt"
)

// ErrRejected is wrapped by every business rejection. Rejected operations
// leave all state untouched.
var ErrRejected = errors.New("rejected")

var (
	ErrAccountNotFound    = fmt.Errorf("%w: account not found", ErrRejected)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrRejected)
	ErrDuplicateUsername  = fmt.Errorf("%w: username already registered", ErrRejected)
	ErrInvalidOwner       = fmt.Errorf("%w: owner name is empty", ErrRejected)
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be a positive number", ErrRejected)
	ErrRecipientNotFound  = fmt.Errorf("%w: recipient account not found", ErrRejected)
	ErrSelfTransfer       = fmt.Errorf("%w: cannot transfer to the same account", ErrRejected)
	ErrInsufficientFunds  = fmt.Errorf("%w: insufficient funds for transfer", ErrRejected)
	ErrLoanNotEligible    = fmt.Errorf("%w: no deposit covers 10%% of the requested loan", ErrRejected)
	ErrNotLoggedIn        = fmt.Errorf("%w: no active session", ErrRejected)
)

func IsRejection(err error) bool {
	return errors.Is(err, ErrRejected)
}
