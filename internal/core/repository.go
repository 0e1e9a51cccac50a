package core

import (
	"context"
)

//go:generate go tool go.uber.org/mock/mockgen -source=repository.go -destination=repository_mock.go -package=core

// AccountRepository is the account store. Accounts are returned by value;
// mutating a returned Account does not change the store.
type AccountRepository interface {
	Register(ctx context.Context, account Account) (Account, error)
	FindByUsername(ctx context.Context, username string) (Account, error)
	FindByUsernameAndPin(ctx context.Context, username string, pin int) (Account, error)
	Remove(ctx context.Context, username string) error
	AppendMovement(ctx context.Context, username string, movement Movement) error
	List(ctx context.Context) ([]Account, error)
	Atomic(ctx context.Context, cb func(r AccountRepository) error) error
}

// PrepareRegistration validates a new account and assigns its username.
// Stores call it before checking uniqueness.
func PrepareRegistration(account Account) (Account, error) {
	account.Username = DeriveUsername(account.Owner)
	if account.Username == "" {
		return Account{}, ErrInvalidOwner
	}

	return account.Clone(), nil
}
