package session

import (
	"slices"

	"bankist/internal/core"
)

// Snapshot is the active session as the view renders it. Movements are in
// display order: ledger order, or ascending by sum when Sorted is set.
type Snapshot struct {
	Account          core.Account
	Summary          core.Summary
	Movements        []core.Movement
	Sorted           bool
	SecondsRemaining int
}

func newSnapshot(account core.Account, sorted bool, secondsRemaining int) Snapshot {
	movements := slices.Clone([]core.Movement(account.Movements))
	if sorted {
		movements = account.Movements.SortedView()
	}

	return Snapshot{
		Account:          account,
		Summary:          account.Summary(),
		Movements:        movements,
		Sorted:           sorted,
		SecondsRemaining: secondsRemaining,
	}
}
