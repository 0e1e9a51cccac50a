package session

//go:generate go tool go.uber.org/mock/mockgen -source=notifier.go -destination=notifier_mock.go -package=session

// Notifier receives every state change the view has to render. It is called
// while the engine is locked, so implementations must not call back into the
// Engine.
type Notifier interface {
	SessionStarted(snapshot Snapshot)
	SessionEnded()
	LedgerChanged(snapshot Snapshot)
	TimerTick(secondsRemaining int)
}
