package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankist/internal/clock"
	"bankist/internal/core"
	"bankist/internal/schedule"
	"bankist/internal/timer"
)

// Engine owns the single interactive session: who is logged in, the idle
// countdown, and the loan credits waiting to land. Every intent, timer tick
// and deferred credit runs under one lock, one at a time.
type Engine struct {
	mu sync.Mutex

	repository core.AccountRepository
	notifier   Notifier
	logger     core.Logger
	clock      clock.Clock
	config     Config

	idle    *timer.Idle
	credits *schedule.Scheduler

	active string
	sorted bool
}

func NewEngine(
	repository core.AccountRepository,
	notifier Notifier,
	logger core.Logger,
	c clock.Clock,
	config Config,
) *Engine {
	e := &Engine{
		repository: repository,
		notifier:   notifier,
		logger:     logger,
		clock:      c,
		config:     config,
	}

	e.idle = timer.NewIdle(c, int(config.IdleTimeout/time.Second), e.execute, e.notifier.TimerTick, e.timeout)
	e.credits = schedule.New(c, e.execute)

	return e
}

func (e *Engine) execute(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn()
}

// Active returns the logged in username.
func (e *Engine) Active() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.active, e.active != ""
}

// PendingCredits returns the number of approved loans not yet credited to
// username.
func (e *Engine) PendingCredits(username string) int {
	return e.credits.Pending(username)
}

// Login replaces any current session when the credentials match. On a
// mismatch the current state, logged in or not, is kept.
func (e *Engine) Login(ctx context.Context, username string, pin int) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	account, err := e.repository.FindByUsernameAndPin(ctx, username, pin)
	if err != nil {
		if core.IsRejection(err) {
			e.logger.InfoContext(ctx, "login rejected", "username", username)
			return Snapshot{}, core.ErrInvalidCredentials
		}
		e.logger.ErrorContext(ctx, "failed to look up credentials", "error", err)
		return Snapshot{}, fmt.Errorf("failed to log in: %w", err)
	}

	e.active = account.Username
	e.sorted = false
	e.idle.Start()

	snapshot := newSnapshot(account, e.sorted, e.idle.Remaining())
	e.notifier.SessionStarted(snapshot)
	e.logger.InfoContext(ctx, "session started", "username", account.Username)

	return snapshot, nil
}

// Transfer moves amount from the active account to the account named to.
// Both legs are appended together or not at all.
func (e *Engine) Transfer(ctx context.Context, to string, amount decimal.Decimal) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == "" {
		return Snapshot{}, core.ErrNotLoggedIn
	}
	if err := core.ValidateAmount(amount); err != nil {
		return Snapshot{}, err
	}

	from := e.active
	transactionCallback := func(r core.AccountRepository) error {
		source, err := r.FindByUsername(ctx, from)
		if err != nil {
			return err
		}

		if _, err = r.FindByUsername(ctx, to); err != nil {
			if errors.Is(err, core.ErrAccountNotFound) {
				return core.ErrRecipientNotFound
			}
			return err
		}

		if to == from {
			return core.ErrSelfTransfer
		}

		if !source.HasSufficientFunds(amount) {
			return core.ErrInsufficientFunds
		}

		now := e.clock.Now()
		if err = r.AppendMovement(ctx, from, core.NewMovement(amount.Neg(), core.KindTransferOut, now)); err != nil {
			return err
		}

		return r.AppendMovement(ctx, to, core.NewMovement(amount, core.KindTransferIn, now))
	}

	if err := e.repository.Atomic(ctx, transactionCallback); err != nil {
		if core.IsRejection(err) {
			e.logger.InfoContext(ctx, "transfer rejected", "from", from, "to", to, "amount", amount, "reason", err)
			return Snapshot{}, err
		}
		e.logger.ErrorContext(ctx, "failed to transfer", "from", from, "to", to, "error", err)
		return Snapshot{}, fmt.Errorf("failed to transfer: %w", err)
	}

	e.idle.Start()

	snapshot, err := e.snapshot(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	e.notifier.LedgerChanged(snapshot)
	e.logger.InfoContext(ctx, "transfer applied", "from", from, "to", to, "amount", amount)

	return snapshot, nil
}

// RequestLoan approves a loan when some single movement covers a tenth of
// amount. The credit lands after the configured delay, whether or not the
// session is still open.
func (e *Engine) RequestLoan(ctx context.Context, amount decimal.Decimal) (uuid.UUID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == "" {
		return uuid.Nil, core.ErrNotLoggedIn
	}
	if err := core.ValidateAmount(amount); err != nil {
		return uuid.Nil, err
	}

	account, err := e.repository.FindByUsername(ctx, e.active)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to load active account", "username", e.active, "error", err)
		return uuid.Nil, fmt.Errorf("failed to request loan: %w", err)
	}

	if !account.EligibleForLoan(amount) {
		e.logger.InfoContext(ctx, "loan rejected", "username", account.Username, "amount", amount)
		return uuid.Nil, core.ErrLoanNotEligible
	}

	username := account.Username
	requestID, err := e.credits.Schedule(username, e.config.LoanDelay, func() {
		e.creditLoan(username, amount)
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to schedule loan credit: %w", err)
	}

	e.idle.Start()
	e.logger.InfoContext(ctx, "loan approved", "username", username, "amount", amount, "request_id", requestID)

	return requestID, nil
}

// creditLoan runs inside the executor when a loan delay elapses.
func (e *Engine) creditLoan(username string, amount decimal.Decimal) {
	ctx := context.Background()

	movement := core.NewMovement(amount, core.KindLoan, e.clock.Now())
	if err := e.repository.AppendMovement(ctx, username, movement); err != nil {
		if errors.Is(err, core.ErrAccountNotFound) {
			e.logger.WarnContext(ctx, "loan credit dropped, account closed", "username", username, "amount", amount)
			return
		}
		e.logger.ErrorContext(ctx, "failed to credit loan", "username", username, "amount", amount, "error", err)
		return
	}

	e.logger.InfoContext(ctx, "loan credited", "username", username, "amount", amount)

	if e.active != username {
		return
	}

	e.idle.Start()
	snapshot, err := e.snapshot(ctx)
	if err != nil {
		return
	}
	e.notifier.LedgerChanged(snapshot)
}

// Close always ends the session. The account is removed, along with its
// pending loan credits, only when username and pin name the active account.
func (e *Engine) Close(ctx context.Context, username string, pin int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == "" {
		return core.ErrNotLoggedIn
	}

	active := e.active
	matched := false
	if username == active {
		_, err := e.repository.FindByUsernameAndPin(ctx, username, pin)
		switch {
		case err == nil:
			matched = true
		case !core.IsRejection(err):
			e.logger.ErrorContext(ctx, "failed to check close credentials", "username", username, "error", err)
			e.endSession()
			return fmt.Errorf("failed to close account: %w", err)
		}
	}

	e.endSession()

	if !matched {
		e.logger.InfoContext(ctx, "close rejected, logged out", "username", active)
		return core.ErrInvalidCredentials
	}

	cancelled := e.credits.CancelOwner(active)
	if err := e.repository.Remove(ctx, active); err != nil {
		e.logger.ErrorContext(ctx, "failed to remove account", "username", active, "error", err)
		return fmt.Errorf("failed to close account: %w", err)
	}

	e.logger.InfoContext(ctx, "account closed", "username", active, "cancelled_credits", cancelled)
	return nil
}

func (e *Engine) Logout(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == "" {
		return core.ErrNotLoggedIn
	}

	e.logger.InfoContext(ctx, "session ended", "username", e.active, "reason", "logout")
	e.endSession()

	return nil
}

// ToggleSort flips between ledger order and ascending-by-sum order. It does
// not count as activity for the idle countdown.
func (e *Engine) ToggleSort(ctx context.Context) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == "" {
		return Snapshot{}, core.ErrNotLoggedIn
	}

	e.sorted = !e.sorted

	snapshot, err := e.snapshot(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	e.notifier.LedgerChanged(snapshot)

	return snapshot, nil
}

func (e *Engine) Snapshot(ctx context.Context) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == "" {
		return Snapshot{}, core.ErrNotLoggedIn
	}

	return e.snapshot(ctx)
}

// Shutdown logs out and cancels the countdown and every pending credit.
// Loans approved later are refused.
func (e *Engine) Shutdown(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != "" {
		e.logger.InfoContext(ctx, "session ended", "username", e.active, "reason", "shutdown")
		e.endSession()
	}
	e.idle.Cancel()
	e.credits.Stop()
}

// timeout runs inside the executor when the idle countdown reaches zero.
func (e *Engine) timeout() {
	if e.active == "" {
		return
	}

	e.logger.InfoContext(context.Background(), "session ended", "username", e.active, "reason", "timeout")
	e.active = ""
	e.sorted = false
	e.notifier.SessionEnded()
}

func (e *Engine) endSession() {
	e.idle.Cancel()
	e.active = ""
	e.sorted = false
	e.notifier.SessionEnded()
}

func (e *Engine) snapshot(ctx context.Context) (Snapshot, error) {
	account, err := e.repository.FindByUsername(ctx, e.active)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to load active account", "username", e.active, "error", err)
		return Snapshot{}, fmt.Errorf("failed to load session: %w", err)
	}

	return newSnapshot(account, e.sorted, e.idle.Remaining()), nil
}
