package core

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"bankist/internal/id"
)

var (
	// Per-deposit interest must be strictly above this to be credited.
	minInterestCredit = decimal.NewFromInt(1)
	// A loan needs one movement covering this share of the requested amount.
	loanCoverage = decimal.New(1, -1)
	hundred      = decimal.NewFromInt(100)
)

type MovementKind string

const (
	KindSeed        MovementKind = "seed"
	KindTransferIn  MovementKind = "transfer_in"
	KindTransferOut MovementKind = "transfer_out"
	KindLoan        MovementKind = "loan"
)

type Movement struct {
	ID   string
	Sum  decimal.Decimal
	Date time.Time
	Kind MovementKind
}

func NewMovement(sum decimal.Decimal, kind MovementKind, at time.Time) Movement {
	return Movement{
		ID:   id.Movement(at),
		Sum:  sum,
		Date: at.UTC(),
		Kind: kind,
	}
}

func (m Movement) IsDeposit() bool {
	return m.Sum.IsPositive()
}

func (m Movement) IsWithdrawal() bool {
	return m.Sum.IsNegative()
}

// Ledger is the append-only movement history of one account, in the order
// movements were applied.
type Ledger []Movement

func (l *Ledger) Append(m Movement) {
	*l = append(*l, m)
}

func (l Ledger) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, m := range l {
		total = total.Add(m.Sum)
	}

	return total
}

func (l Ledger) TotalDeposits() decimal.Decimal {
	total := decimal.Zero
	for _, m := range l {
		if m.IsDeposit() {
			total = total.Add(m.Sum)
		}
	}

	return total
}

func (l Ledger) TotalWithdrawals() decimal.Decimal {
	total := decimal.Zero
	for _, m := range l {
		if m.IsWithdrawal() {
			total = total.Add(m.Sum.Abs())
		}
	}

	return total
}

// QualifyingInterest sums the interest of every deposit at rate percent,
// skipping deposits whose interest is not above the minimum credit of 1.
func (l Ledger) QualifyingInterest(rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range l {
		if !m.IsDeposit() {
			continue
		}

		interest := m.Sum.Mul(rate).Div(hundred)
		if interest.GreaterThan(minInterestCredit) {
			total = total.Add(interest)
		}
	}

	return total
}

// SortedView returns a copy ordered by ascending sum. The ledger itself is
// never reordered.
func (l Ledger) SortedView() []Movement {
	out := slices.Clone([]Movement(l))
	slices.SortStableFunc(out, func(a, b Movement) int {
		return a.Sum.Cmp(b.Sum)
	})

	return out
}

func (l Ledger) HasMovementAtLeast(amount decimal.Decimal) bool {
	return slices.ContainsFunc(l, func(m Movement) bool {
		return m.Sum.GreaterThanOrEqual(amount)
	})
}

func (l Ledger) Summary(rate decimal.Decimal) Summary {
	return Summary{
		Balance:          l.Balance(),
		TotalDeposits:    l.TotalDeposits(),
		TotalWithdrawals: l.TotalWithdrawals(),
		Interest:         l.QualifyingInterest(rate),
	}
}

type Summary struct {
	Balance          decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	Interest         decimal.Decimal
}

type Account struct {
	Owner        string
	Username     string
	PIN          int
	InterestRate decimal.Decimal
	Locale       string
	Movements    Ledger
}

func (a Account) Balance() decimal.Decimal {
	return a.Movements.Balance()
}

func (a Account) Summary() Summary {
	return a.Movements.Summary(a.InterestRate)
}

func (a Account) HasSufficientFunds(amount decimal.Decimal) bool {
	return a.Balance().GreaterThanOrEqual(amount)
}

// EligibleForLoan applies the 10% rule: some single movement must cover at
// least a tenth of the requested amount.
func (a Account) EligibleForLoan(amount decimal.Decimal) bool {
	return a.Movements.HasMovementAtLeast(amount.Mul(loanCoverage))
}

// Clone returns a copy whose movement slice does not alias a.
func (a Account) Clone() Account {
	a.Movements = slices.Clone(a.Movements)
	return a
}
