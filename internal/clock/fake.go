package clock

import (
	"slices"
	"sync"
	"time"
)

// Fake is a manually driven Clock. Callbacks run synchronously on the
// goroutine calling Advance, never while the clock's lock is held.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	waiters []*fakeTimer
}

type fakeTimer struct {
	clock    *Fake
	deadline time.Time
	seq      uint64
	fn       func()
}

func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t := &fakeTimer{
		clock:    f,
		deadline: f.now.Add(d),
		seq:      f.seq,
		fn:       fn,
	}
	f.waiters = append(f.waiters, t)

	return t
}

// Advance moves the clock forward by d, firing every callback whose deadline
// falls inside the window in deadline order. Callbacks scheduled by a
// callback fire in the same call if they are due.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()
		next := f.nextDue(target)
		if next == nil {
			f.now = target
			f.mu.Unlock()
			return
		}

		f.now = next.deadline
		f.remove(next)
		f.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of callbacks waiting to fire.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.waiters)
}

func (f *Fake) nextDue(target time.Time) *fakeTimer {
	var next *fakeTimer
	for _, t := range f.waiters {
		if t.deadline.After(target) {
			continue
		}
		if next == nil || t.deadline.Before(next.deadline) ||
			(t.deadline.Equal(next.deadline) && t.seq < next.seq) {
			next = t
		}
	}

	return next
}

func (f *Fake) remove(t *fakeTimer) bool {
	before := len(f.waiters)
	f.waiters = slices.DeleteFunc(f.waiters, func(w *fakeTimer) bool {
		return w == t
	})

	return len(f.waiters) < before
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	return t.clock.remove(t)
}
