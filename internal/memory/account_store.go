package memory

import (
	"context"
	"slices"
	"sync"

	"bankist/internal/core"
)

type dataset struct {
	order    []string
	accounts map[string]*core.Account
}

func (d *dataset) clone() *dataset {
	out := &dataset{
		order:    slices.Clone(d.order),
		accounts: make(map[string]*core.Account, len(d.accounts)),
	}
	for username, account := range d.accounts {
		cp := account.Clone()
		out.accounts[username] = &cp
	}

	return out
}

// AccountStore keeps accounts in process memory. It is safe for concurrent
// use; the copy handed to an Atomic callback runs under the store lock.
type AccountStore struct {
	mu   *sync.Mutex
	data *dataset
	inTx bool
}

var _ core.AccountRepository = AccountStore{}

func NewAccountStore() AccountStore {
	return AccountStore{
		mu: &sync.Mutex{},
		data: &dataset{
			accounts: make(map[string]*core.Account),
		},
	}
}

func (s AccountStore) lock() func() {
	if s.inTx {
		return func() {}
	}

	s.mu.Lock()
	return s.mu.Unlock
}

func (s AccountStore) Register(_ context.Context, account core.Account) (core.Account, error) {
	account, err := core.PrepareRegistration(account)
	if err != nil {
		return core.Account{}, err
	}

	defer s.lock()()

	if _, exists := s.data.accounts[account.Username]; exists {
		return core.Account{}, core.ErrDuplicateUsername
	}

	stored := account.Clone()
	s.data.accounts[account.Username] = &stored
	s.data.order = append(s.data.order, account.Username)

	return account, nil
}

func (s AccountStore) FindByUsername(_ context.Context, username string) (core.Account, error) {
	defer s.lock()()

	account, ok := s.data.accounts[username]
	if !ok {
		return core.Account{}, core.ErrAccountNotFound
	}

	return account.Clone(), nil
}

func (s AccountStore) FindByUsernameAndPin(_ context.Context, username string, pin int) (core.Account, error) {
	defer s.lock()()

	account, ok := s.data.accounts[username]
	if !ok || account.PIN != pin {
		return core.Account{}, core.ErrInvalidCredentials
	}

	return account.Clone(), nil
}

func (s AccountStore) Remove(_ context.Context, username string) error {
	defer s.lock()()

	if _, ok := s.data.accounts[username]; !ok {
		return nil
	}

	delete(s.data.accounts, username)
	s.data.order = slices.DeleteFunc(s.data.order, func(u string) bool {
		return u == username
	})

	return nil
}

func (s AccountStore) AppendMovement(_ context.Context, username string, movement core.Movement) error {
	defer s.lock()()

	account, ok := s.data.accounts[username]
	if !ok {
		return core.ErrAccountNotFound
	}

	account.Movements.Append(movement)
	return nil
}

func (s AccountStore) List(_ context.Context) ([]core.Account, error) {
	defer s.lock()()

	out := make([]core.Account, 0, len(s.data.order))
	for _, username := range s.data.order {
		out = append(out, s.data.accounts[username].Clone())
	}

	return out, nil
}

// Atomic runs cb with the store locked. If cb fails every change it made is
// discarded.
func (s AccountStore) Atomic(_ context.Context, cb func(core.AccountRepository) error) error {
	if s.inTx {
		return cb(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.data.clone()
	txStore := AccountStore{
		mu:   s.mu,
		data: s.data,
		inTx: true,
	}

	if err := cb(txStore); err != nil {
		*s.data = *before
		return err
	}

	return nil
}
