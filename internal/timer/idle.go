package timer

import (
	"sync"
	"time"

	"bankist/internal/clock"
)

const tick = time.Second

// Executor runs fn with whatever serialization its owner requires. Ticks
// scheduled by the clock reach the callbacks only through it.
type Executor func(fn func())

// Idle is a restartable whole-second countdown. Only the latest countdown is
// live; ticks left over from a cancelled or restarted one are dropped.
type Idle struct {
	clock     clock.Clock
	seconds   int
	execute   Executor
	onTick    func(remaining int)
	onTimeout func()

	mu         sync.Mutex
	generation uint64
	remaining  int
	running    bool
	pending    clock.Timer
}

func NewIdle(c clock.Clock, seconds int, execute Executor, onTick func(int), onTimeout func()) *Idle {
	return &Idle{
		clock:     c,
		seconds:   seconds,
		execute:   execute,
		onTick:    onTick,
		onTimeout: onTimeout,
	}
}

// Start restarts the countdown from the full duration and reports it
// immediately. The caller must already be inside the executor.
func (i *Idle) Start() {
	i.mu.Lock()
	i.stopLocked()
	i.generation++
	i.remaining = i.seconds
	i.running = true
	if i.remaining > 0 {
		i.scheduleLocked(i.generation)
	}
	remaining := i.remaining
	i.mu.Unlock()

	i.onTick(remaining)
	if remaining == 0 {
		i.expire()
	}
}

// Cancel stops the countdown without firing the timeout.
func (i *Idle) Cancel() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.stopLocked()
	i.generation++
	i.running = false
}

func (i *Idle) Remaining() int {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.running {
		return 0
	}
	return i.remaining
}

func (i *Idle) Running() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.running
}

func (i *Idle) scheduleLocked(generation uint64) {
	i.pending = i.clock.AfterFunc(tick, func() {
		i.execute(func() { i.step(generation) })
	})
}

func (i *Idle) stopLocked() {
	if i.pending != nil {
		i.pending.Stop()
		i.pending = nil
	}
}

func (i *Idle) step(generation uint64) {
	i.mu.Lock()
	if generation != i.generation || !i.running {
		i.mu.Unlock()
		return
	}

	i.remaining--
	remaining := i.remaining
	if remaining > 0 {
		i.scheduleLocked(generation)
	} else {
		i.pending = nil
	}
	i.mu.Unlock()

	i.onTick(remaining)
	if remaining == 0 {
		i.expire()
	}
}

func (i *Idle) expire() {
	i.mu.Lock()
	i.running = false
	i.generation++
	i.mu.Unlock()

	i.onTimeout()
}
