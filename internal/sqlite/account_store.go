package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"bankist/internal/core"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type AccountStore struct {
	db *sql.DB
	tx *sql.Tx
}

var _ core.AccountRepository = AccountStore{}

func NewAccountStore(db *sql.DB) AccountStore {
	return AccountStore{
		db: db,
	}
}

func (s AccountStore) q() querier {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s AccountStore) Register(ctx context.Context, account core.Account) (core.Account, error) {
	account, err := core.PrepareRegistration(account)
	if err != nil {
		return core.Account{}, err
	}

	err = s.Atomic(ctx, func(r core.AccountRepository) error {
		tx := r.(AccountStore)

		result, err := tx.q().ExecContext(ctx, `
			INSERT INTO accounts (username, owner, pin, interest_rate, locale)
			VALUES (?, ?, ?, ?, ?)
		`, account.Username, account.Owner, account.PIN, account.InterestRate.String(), account.Locale)
		if err != nil {
			var sqliteErr sqlite3.Error
			if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
				return core.ErrDuplicateUsername
			}
			return fmt.Errorf("failed to insert account: %w", err)
		}

		accountID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get account id: %w", err)
		}

		for _, movement := range account.Movements {
			if err = tx.insertMovement(ctx, accountID, movement); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return core.Account{}, err
	}

	return account, nil
}

func (s AccountStore) FindByUsername(ctx context.Context, username string) (core.Account, error) {
	query := `
		SELECT id, username, owner, pin, interest_rate, locale
		FROM accounts
		WHERE username = ?
	`

	account, id, err := s.scanAccount(s.q().QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Account{}, core.ErrAccountNotFound
		}
		return core.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	if account.Movements, err = s.movements(ctx, id); err != nil {
		return core.Account{}, err
	}

	return account, nil
}

func (s AccountStore) FindByUsernameAndPin(ctx context.Context, username string, pin int) (core.Account, error) {
	query := `
		SELECT id, username, owner, pin, interest_rate, locale
		FROM accounts
		WHERE username = ? AND pin = ?
	`

	account, id, err := s.scanAccount(s.q().QueryRowContext(ctx, query, username, pin))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Account{}, core.ErrInvalidCredentials
		}
		return core.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	if account.Movements, err = s.movements(ctx, id); err != nil {
		return core.Account{}, err
	}

	return account, nil
}

func (s AccountStore) Remove(ctx context.Context, username string) error {
	return s.Atomic(ctx, func(r core.AccountRepository) error {
		tx := r.(AccountStore)

		if _, err := tx.q().ExecContext(ctx, `
			DELETE FROM movements
			WHERE account_id IN (SELECT id FROM accounts WHERE username = ?)
		`, username); err != nil {
			return fmt.Errorf("failed to delete movements: %w", err)
		}

		if _, err := tx.q().ExecContext(ctx, `DELETE FROM accounts WHERE username = ?`, username); err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}

		return nil
	})
}

func (s AccountStore) AppendMovement(ctx context.Context, username string, movement core.Movement) error {
	query := `
		INSERT INTO movements (movement_id, account_id, amount, kind, occurred_at)
		SELECT ?, id, ?, ?, ?
		FROM accounts
		WHERE username = ?
	`

	result, err := s.q().ExecContext(ctx, query,
		movement.ID,
		movement.Sum.String(),
		string(movement.Kind),
		movement.Date.UTC().Format(time.RFC3339Nano),
		username,
	)
	if err != nil {
		return fmt.Errorf("failed to insert movement: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return core.ErrAccountNotFound
	}

	return nil
}

func (s AccountStore) List(ctx context.Context) ([]core.Account, error) {
	rows, err := s.q().QueryContext(ctx, `
		SELECT id, username, owner, pin, interest_rate, locale
		FROM accounts
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	var (
		accounts []core.Account
		ids      []int64
	)
	for rows.Next() {
		account, id, err := s.scanAccount(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	rows.Close()

	for i, id := range ids {
		if accounts[i].Movements, err = s.movements(ctx, id); err != nil {
			return nil, err
		}
	}

	return accounts, nil
}

func (s AccountStore) Atomic(ctx context.Context, cb func(core.AccountRepository) error) error {
	if s.tx != nil {
		return cb(s)
	}

	// BEGIN IMMEDIATE (see _txlock in the DSN) takes the write lock up front,
	// so a balance check and the movements it guards run without interleaving.
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelDefault,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := AccountStore{
		db: s.db,
		tx: tx,
	}

	if err = cb(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (s AccountStore) scanAccount(row scanner) (core.Account, int64, error) {
	var (
		account core.Account
		id      int64
		rate    string
	)
	if err := row.Scan(&id, &account.Username, &account.Owner, &account.PIN, &rate, &account.Locale); err != nil {
		return core.Account{}, 0, err
	}

	parsed, err := decimal.NewFromString(rate)
	if err != nil {
		return core.Account{}, 0, fmt.Errorf("invalid interest rate %q: %w", rate, err)
	}
	account.InterestRate = parsed

	return account, id, nil
}

func (s AccountStore) movements(ctx context.Context, accountID int64) (core.Ledger, error) {
	rows, err := s.q().QueryContext(ctx, `
		SELECT movement_id, amount, kind, occurred_at
		FROM movements
		WHERE account_id = ?
		ORDER BY position
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movements: %w", err)
	}
	defer rows.Close()

	ledger := core.Ledger{}
	for rows.Next() {
		var (
			movement   core.Movement
			amount     string
			kind       string
			occurredAt string
		)
		if err = rows.Scan(&movement.ID, &amount, &kind, &occurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}

		if movement.Sum, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("invalid movement amount %q: %w", amount, err)
		}
		if movement.Date, err = time.Parse(time.RFC3339Nano, occurredAt); err != nil {
			return nil, fmt.Errorf("invalid movement date %q: %w", occurredAt, err)
		}
		movement.Kind = core.MovementKind(kind)

		ledger = append(ledger, movement)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movements: %w", err)
	}

	return ledger, nil
}

func (s AccountStore) insertMovement(ctx context.Context, accountID int64, movement core.Movement) error {
	_, err := s.q().ExecContext(ctx, `
		INSERT INTO movements (movement_id, account_id, amount, kind, occurred_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		movement.ID,
		accountID,
		movement.Sum.String(),
		string(movement.Kind),
		movement.Date.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert movement: %w", err)
	}

	return nil
}
